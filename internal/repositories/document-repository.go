package repositories

import (
	"context"
	"fmt"

	"hr-records/internal/entities"
	"hr-records/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	documentTable  = "documents"
	documentFields = "id, employee_id, document_type, file_path, expiration_date, upload_date"
)

type DocumentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d entities.Document) (*entities.Document, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error)
	List(ctx context.Context, p types.Pagination) ([]entities.Document, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Document) (*entities.Document, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error)
}

type DocumentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDocumentRepository(storage *pgxpool.Pool, logger *zap.Logger) DocumentRepositoryInterface {
	return &DocumentRepository{storage: storage, logger: logger}
}

func scanDocument(row pgx.Row) (*entities.Document, error) {
	var d entities.Document
	err := row.Scan(&d.ID, &d.EmployeeID, &d.DocumentType, &d.FilePath, &d.ExpirationDate, &d.UploadDate)
	if err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, tx pgx.Tx, d entities.Document) (*entities.Document, error) {
	query, args, err := psql.Insert(documentTable).
		Columns("employee_id", "document_type", "file_path", "expiration_date").
		Values(d.EmployeeID, d.DocumentType, d.FilePath, d.ExpirationDate).
		Suffix("RETURNING " + documentFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}
	return scanDocument(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *DocumentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error) {
	query, args, err := psql.Select(documentFields).From(documentTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для documents: %w", err)
	}
	return scanDocument(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *DocumentRepository) List(ctx context.Context, p types.Pagination) ([]entities.Document, error) {
	query, args, err := paginate(psql.Select(documentFields).From(documentTable).OrderBy("id"), p.Skip, p.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для documents: %w", err)
	}
	rows, err := getQuerier(ctx, r.storage, nil).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки documents: %w", err)
	}
	defer rows.Close()

	documents := make([]entities.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		documents = append(documents, *d)
	}
	return documents, rows.Err()
}

// Update перезаписывает все изменяемые поля; upload_date не трогается.
func (r *DocumentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Document) (*entities.Document, error) {
	query, args, err := psql.Update(documentTable).
		Set("employee_id", d.EmployeeID).
		Set("document_type", d.DocumentType).
		Set("file_path", d.FilePath).
		Set("expiration_date", d.ExpirationDate).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + documentFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}
	return scanDocument(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *DocumentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error) {
	query, args, err := psql.Delete(documentTable).Where(sq.Eq{"id": id}).Suffix("RETURNING " + documentFields).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}
	return scanDocument(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}
