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
	roleTable         = "roles"
	roleFields        = "id, role_type, start_date, end_date, status"
	employeeRoleTable = "employee_roles"
)

type RoleRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, role entities.Role) (uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Role, error)
	List(ctx context.Context, p types.Pagination) ([]entities.Role, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, role entities.Role) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error

	// Связь с сотрудниками
	ExistingEmployeeIDs(ctx context.Context, tx pgx.Tx, ids []uint64) ([]uint64, error)
	AssignedEmployeeIDs(ctx context.Context, tx pgx.Tx, roleID uint64) ([]uint64, error)
	AddEmployees(ctx context.Context, tx pgx.Tx, roleID uint64, employeeIDs []uint64) error
	RemoveEmployees(ctx context.Context, tx pgx.Tx, roleID uint64, employeeIDs []uint64) error
}

type RoleRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoleRepository(storage *pgxpool.Pool, logger *zap.Logger) RoleRepositoryInterface {
	return &RoleRepository{storage: storage, logger: logger}
}

func scanRole(row pgx.Row) (*entities.Role, error) {
	var role entities.Role
	if err := row.Scan(&role.ID, &role.RoleType, &role.StartDate, &role.EndDate, &role.Status); err != nil {
		return nil, translateError(err)
	}
	role.Employees = []entities.Employee{}
	return &role, nil
}

// roleEmployeesQuery выбирает сотрудников ролей в полном виде, как и EmployeeRepository.
func roleEmployeesQuery(roleIDs []uint64) sq.SelectBuilder {
	return psql.Select("er.role_id, " + employeeFields).
		From(employeeRoleTable + " er").
		Join("employees e ON e.id = er.employee_id").
		LeftJoin("departments md ON md.manager_id = e.id").
		Where(sq.Eq{"er.role_id": roleIDs}).
		OrderBy("er.role_id", "e.id")
}

// loadEmployees одним запросом подтягивает сотрудников для набора ролей.
func (r *RoleRepository) loadEmployees(ctx context.Context, q Querier, roleIDs []uint64) (map[uint64][]entities.Employee, error) {
	result := make(map[uint64][]entities.Employee, len(roleIDs))
	if len(roleIDs) == 0 {
		return result, nil
	}

	query, args, err := roleEmployeesQuery(roleIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для employee_roles: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки employee_roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var roleID uint64
		e, err := scanEmployee(rows, &roleID)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования employee_roles: %w", err)
		}
		result[roleID] = append(result[roleID], *e)
	}
	return result, rows.Err()
}

func (r *RoleRepository) Create(ctx context.Context, tx pgx.Tx, role entities.Role) (uint64, error) {
	query, args, err := psql.Insert(roleTable).
		Columns("role_type", "start_date", "end_date", "status").
		Values(role.RoleType, role.StartDate, role.EndDate, role.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	var newID uint64
	if err := getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...).Scan(&newID); err != nil {
		return 0, translateError(err)
	}
	return newID, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Role, error) {
	q := getQuerier(ctx, r.storage, tx)
	query, args, err := psql.Select(roleFields).From(roleTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для roles: %w", err)
	}
	role, err := scanRole(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	employees, err := r.loadEmployees(ctx, q, []uint64{id})
	if err != nil {
		return nil, err
	}
	if refs, ok := employees[id]; ok {
		role.Employees = refs
	}
	return role, nil
}

func (r *RoleRepository) List(ctx context.Context, p types.Pagination) ([]entities.Role, error) {
	q := getQuerier(ctx, r.storage, nil)
	query, args, err := paginate(psql.Select(roleFields).From(roleTable).OrderBy("id"), p.Skip, p.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для roles: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки roles: %w", err)
	}
	roles := make([]entities.Role, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		roles = append(roles, *role)
		ids = append(ids, role.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка выборки roles: %w", err)
	}

	// Второй запрос на том же соединении возможен только после закрытия rows
	employees, err := r.loadEmployees(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range roles {
		if refs, ok := employees[roles[i].ID]; ok {
			roles[i].Employees = refs
		}
	}
	return roles, nil
}

func (r *RoleRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, role entities.Role) error {
	query, args, err := psql.Update(roleTable).
		Set("role_type", role.RoleType).
		Set("start_date", role.StartDate).
		Set("end_date", role.EndDate).
		Set("status", role.Status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
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

// Delete удаляет роль; строки employee_roles удаляются каскадно.
func (r *RoleRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	query, args, err := psql.Delete(roleTable).Where(sq.Eq{"id": id}).ToSql()
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

func (r *RoleRepository) collectIDs(ctx context.Context, tx pgx.Tx, builder sq.SelectBuilder) ([]uint64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL: %w", err)
	}
	rows, err := getQuerier(ctx, r.storage, tx).Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ошибка сканирования id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ExistingEmployeeIDs оставляет из ids только существующих сотрудников.
func (r *RoleRepository) ExistingEmployeeIDs(ctx context.Context, tx pgx.Tx, ids []uint64) ([]uint64, error) {
	if len(ids) == 0 {
		return []uint64{}, nil
	}
	return r.collectIDs(ctx, tx, psql.Select("id").From(employeeTable).Where(sq.Eq{"id": ids}).OrderBy("id"))
}

func (r *RoleRepository) AssignedEmployeeIDs(ctx context.Context, tx pgx.Tx, roleID uint64) ([]uint64, error) {
	return r.collectIDs(ctx, tx, psql.Select("employee_id").From(employeeRoleTable).Where(sq.Eq{"role_id": roleID}).OrderBy("employee_id"))
}

func (r *RoleRepository) AddEmployees(ctx context.Context, tx pgx.Tx, roleID uint64, employeeIDs []uint64) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	builder := psql.Insert(employeeRoleTable).Columns("employee_id", "role_id")
	for _, employeeID := range employeeIDs {
		builder = builder.Values(employeeID, roleID)
	}
	query, args, err := builder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса AddEmployees: %w", err)
	}
	if _, err := getQuerier(ctx, r.storage, tx).Exec(ctx, query, args...); err != nil {
		return translateError(err)
	}
	return nil
}

func (r *RoleRepository) RemoveEmployees(ctx context.Context, tx pgx.Tx, roleID uint64, employeeIDs []uint64) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	query, args, err := psql.Delete(employeeRoleTable).
		Where(sq.Eq{"role_id": roleID, "employee_id": employeeIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса RemoveEmployees: %w", err)
	}
	if _, err := getQuerier(ctx, r.storage, tx).Exec(ctx, query, args...); err != nil {
		return translateError(err)
	}
	return nil
}
