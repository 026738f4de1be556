package repositories

import (
	"context"
	"fmt"
	"sort"

	"hr-records/internal/entities"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	employeeTable  = "employees"
	employeeFields = "e.id, e.employee_code, e.last_name, e.first_name, e.position, e.hire_date, e.salary, e.status, e.department_id, md.id, md.name"
	employeeFrom   = "employees e LEFT JOIN departments md ON md.manager_id = e.id"
)

// employeeUpdatableColumns - БЕЛЫЙ СПИСОК колонок для частичного обновления
var employeeUpdatableColumns = map[string]bool{
	"employee_code": true,
	"last_name":     true,
	"first_name":    true,
	"position":      true,
	"hire_date":     true,
	"salary":        true,
	"status":        true,
	"department_id": true,
}

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, e entities.Employee) (*entities.Employee, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Employee, error)
	FindByCode(ctx context.Context, tx pgx.Tx, code string) (*entities.Employee, error)
	List(ctx context.Context, p types.Pagination) ([]entities.Employee, error)
	ListByDepartment(ctx context.Context, departmentID uint64) ([]entities.Employee, error)
	SearchByLastName(ctx context.Context, fragment string) ([]entities.Employee, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, changes map[string]interface{}) (*entities.Employee, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	CountDependents(ctx context.Context, tx pgx.Tx, id uint64) (entities.EmployeeDependents, error)
}

type EmployeeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

// scanEmployee читает колонки employeeFields. prefix - колонки, выбранные перед ними.
func scanEmployee(row pgx.Row, prefix ...interface{}) (*entities.Employee, error) {
	var e entities.Employee
	var managedID *uint64
	var managedName *string

	dest := append(prefix,
		&e.ID, &e.EmployeeCode, &e.LastName, &e.FirstName, &e.Position,
		&e.HireDate, &e.Salary, &e.Status, &e.DepartmentID,
		&managedID, &managedName,
	)
	err := row.Scan(dest...)
	if err != nil {
		return nil, translateError(err)
	}
	if managedID != nil {
		e.ManagedDepartment = &entities.DepartmentRef{ID: *managedID}
		if managedName != nil {
			e.ManagedDepartment.Name = *managedName
		}
	}
	return &e, nil
}

func (r *EmployeeRepository) findOne(ctx context.Context, tx pgx.Tx, where sq.Sqlizer) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeFields).From(employeeFrom).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для employees: %w", err)
	}
	return scanEmployee(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *EmployeeRepository) findMany(ctx context.Context, builder sq.SelectBuilder) ([]entities.Employee, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для employees: %w", err)
	}
	rows, err := getQuerier(ctx, r.storage, nil).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) Create(ctx context.Context, tx pgx.Tx, e entities.Employee) (*entities.Employee, error) {
	status := e.Status
	if status == "" {
		status = entities.EmployeeStatusActive
	}
	query, args, err := psql.Insert(employeeTable).
		Columns("employee_code", "last_name", "first_name", "position", "hire_date", "salary", "status", "department_id").
		Values(e.EmployeeCode, e.LastName, e.FirstName, e.Position, e.HireDate, e.Salary, status, e.DepartmentID).
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

func (r *EmployeeRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Employee, error) {
	return r.findOne(ctx, tx, sq.Eq{"e.id": id})
}

func (r *EmployeeRepository) FindByCode(ctx context.Context, tx pgx.Tx, code string) (*entities.Employee, error) {
	return r.findOne(ctx, tx, sq.Eq{"e.employee_code": code})
}

func (r *EmployeeRepository) List(ctx context.Context, p types.Pagination) ([]entities.Employee, error) {
	builder := psql.Select(employeeFields).From(employeeFrom).OrderBy("e.id")
	return r.findMany(ctx, paginate(builder, p.Skip, p.Limit))
}

func (r *EmployeeRepository) ListByDepartment(ctx context.Context, departmentID uint64) ([]entities.Employee, error) {
	return r.findMany(ctx, psql.Select(employeeFields).From(employeeFrom).
		Where(sq.Eq{"e.department_id": departmentID}).
		OrderBy("e.id"))
}

func (r *EmployeeRepository) SearchByLastName(ctx context.Context, fragment string) ([]entities.Employee, error) {
	return r.findMany(ctx, searchByLastNameQuery(fragment))
}

func searchByLastNameQuery(fragment string) sq.SelectBuilder {
	return psql.Select(employeeFields).From(employeeFrom).
		Where(sq.ILike{"e.last_name": "%" + escapeLike(fragment) + "%"}).
		OrderBy("e.id")
}

// buildEmployeeUpdate собирает UPDATE только из переданных колонок.
// Колонки сортируются, чтобы SQL был детерминированным.
func buildEmployeeUpdate(id uint64, changes map[string]interface{}) (string, []interface{}, error) {
	columns := make([]string, 0, len(changes))
	for column := range changes {
		if !employeeUpdatableColumns[column] {
			return "", nil, apperrors.NewInvalidInputError("поле %s нельзя изменить", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	builder := psql.Update(employeeTable)
	for _, column := range columns {
		builder = builder.Set(column, changes[column])
	}
	return builder.Where(sq.Eq{"id": id}).Suffix("RETURNING id").ToSql()
}

// Update применяет частичные изменения. Пустой набор изменений - это просто чтение.
func (r *EmployeeRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, changes map[string]interface{}) (*entities.Employee, error) {
	if len(changes) == 0 {
		return r.FindByID(ctx, tx, id)
	}

	query, args, err := buildEmployeeUpdate(id, changes)
	if err != nil {
		return nil, err
	}

	var updatedID uint64
	if err := getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, translateError(err)
	}
	return r.FindByID(ctx, tx, updatedID)
}

func (r *EmployeeRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	query, args, err := psql.Delete(employeeTable).Where(sq.Eq{"id": id}).ToSql()
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

// CountDependents считает записи, ссылающиеся на сотрудника.
func (r *EmployeeRepository) CountDependents(ctx context.Context, tx pgx.Tx, id uint64) (entities.EmployeeDependents, error) {
	var d entities.EmployeeDependents
	query, args, err := psql.Select().
		Column(sq.Expr("(SELECT COUNT(*) FROM documents WHERE employee_id = ?)", id)).
		Column(sq.Expr("(SELECT COUNT(*) FROM vacations WHERE employee_id = ?)", id)).
		Column(sq.Expr("(SELECT COUNT(*) FROM users WHERE employee_id = ?)", id)).
		Column(sq.Expr("(SELECT COUNT(*) FROM employee_roles WHERE employee_id = ?)", id)).
		ToSql()
	if err != nil {
		return d, fmt.Errorf("ошибка сборки запроса CountDependents: %w", err)
	}

	err = getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...).Scan(&d.Documents, &d.Vacations, &d.Users, &d.Roles)
	if err != nil {
		return d, fmt.Errorf("ошибка подсчета зависимых записей: %w", err)
	}
	return d, nil
}
