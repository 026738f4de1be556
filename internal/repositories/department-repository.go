package repositories

import (
	"context"
	"fmt"

	"hr-records/internal/entities"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	departmentTable  = "departments"
	departmentFields = "d.id, d.name, d.description, d.manager_id, m.id, m.employee_code, m.last_name, m.first_name"
	departmentFrom   = "departments d LEFT JOIN employees m ON m.id = d.manager_id"
)

type DepartmentRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, d entities.Department) (*entities.Department, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Department, error)
	List(ctx context.Context, p types.Pagination) ([]entities.Department, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Department) (*entities.Department, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDepartmentRepository(storage *pgxpool.Pool, logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage, logger: logger}
}

func scanDepartment(row pgx.Row) (*entities.Department, error) {
	var d entities.Department
	var managerID *uint64
	var code, lastName, firstName *string

	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.ManagerID, &managerID, &code, &lastName, &firstName)
	if err != nil {
		return nil, translateError(err)
	}
	if managerID != nil {
		d.Manager = &entities.EmployeeRef{ID: *managerID}
		if code != nil {
			d.Manager.EmployeeCode = *code
		}
		if lastName != nil {
			d.Manager.LastName = *lastName
		}
		if firstName != nil {
			d.Manager.FirstName = *firstName
		}
	}
	return &d, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, tx pgx.Tx, d entities.Department) (*entities.Department, error) {
	query, args, err := psql.Insert(departmentTable).
		Columns("name", "description", "manager_id").
		Values(d.Name, d.Description, d.ManagerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return nil, translateError(err)
	}
	return r.FindByID(ctx, tx, newID)
}

func (r *DepartmentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Department, error) {
	query, args, err := psql.Select(departmentFields).From(departmentFrom).Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для departments: %w", err)
	}
	return scanDepartment(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *DepartmentRepository) List(ctx context.Context, p types.Pagination) ([]entities.Department, error) {
	query, args, err := paginate(psql.Select(departmentFields).From(departmentFrom).OrderBy("d.id"), p.Skip, p.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для departments: %w", err)
	}
	rows, err := getQuerier(ctx, r.storage, nil).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки departments: %w", err)
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

// Update перезаписывает все поля департамента.
func (r *DepartmentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Department) (*entities.Department, error) {
	query, args, err := psql.Update(departmentTable).
		Set("name", d.Name).
		Set("description", d.Description).
		Set("manager_id", d.ManagerID).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := getQuerier(ctx, r.storage, tx).Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindByID(ctx, tx, id)
}

func (r *DepartmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	query, args, err := psql.Delete(departmentTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}

	result, err := getQuerier(ctx, r.storage, tx).Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
