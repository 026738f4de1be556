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
	vacationTable  = "vacations"
	vacationFields = "id, employee_id, start_date, end_date, vacation_type, status, notes"
)

type VacationRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, v entities.Vacation) (*entities.Vacation, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vacation, error)
	List(ctx context.Context, p types.Pagination) ([]entities.Vacation, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, v entities.Vacation) (*entities.Vacation, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vacation, error)
}

type VacationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewVacationRepository(storage *pgxpool.Pool, logger *zap.Logger) VacationRepositoryInterface {
	return &VacationRepository{storage: storage, logger: logger}
}

func scanVacation(row pgx.Row) (*entities.Vacation, error) {
	var v entities.Vacation
	err := row.Scan(&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.VacationType, &v.Status, &v.Notes)
	if err != nil {
		return nil, translateError(err)
	}
	return &v, nil
}

func (r *VacationRepository) Create(ctx context.Context, tx pgx.Tx, v entities.Vacation) (*entities.Vacation, error) {
	query, args, err := psql.Insert(vacationTable).
		Columns("employee_id", "start_date", "end_date", "vacation_type", "status", "notes").
		Values(v.EmployeeID, v.StartDate, v.EndDate, v.VacationType, v.Status, v.Notes).
		Suffix("RETURNING " + vacationFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}
	return scanVacation(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *VacationRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vacation, error) {
	query, args, err := psql.Select(vacationFields).From(vacationTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для vacations: %w", err)
	}
	return scanVacation(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *VacationRepository) List(ctx context.Context, p types.Pagination) ([]entities.Vacation, error) {
	query, args, err := paginate(psql.Select(vacationFields).From(vacationTable).OrderBy("id"), p.Skip, p.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для vacations: %w", err)
	}
	rows, err := getQuerier(ctx, r.storage, nil).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки vacations: %w", err)
	}
	defer rows.Close()

	vacations := make([]entities.Vacation, 0)
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, *v)
	}
	return vacations, rows.Err()
}

func (r *VacationRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, v entities.Vacation) (*entities.Vacation, error) {
	query, args, err := psql.Update(vacationTable).
		Set("employee_id", v.EmployeeID).
		Set("start_date", v.StartDate).
		Set("end_date", v.EndDate).
		Set("vacation_type", v.VacationType).
		Set("status", v.Status).
		Set("notes", v.Notes).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + vacationFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}
	return scanVacation(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *VacationRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vacation, error) {
	query, args, err := psql.Delete(vacationTable).Where(sq.Eq{"id": id}).Suffix("RETURNING " + vacationFields).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}
	return scanVacation(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}
