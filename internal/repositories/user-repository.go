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
	userTable  = "users"
	userFields = "id, username, email, password, is_active, registration_date, employee_id"
)

var userUpdatableColumns = map[string]bool{
	"username":    true,
	"email":       true,
	"password":    true,
	"is_active":   true,
	"employee_id": true,
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, tx pgx.Tx, u entities.User) (*entities.User, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error)
	List(ctx context.Context, p types.Pagination) ([]entities.User, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, changes map[string]interface{}) (*entities.User, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsActive, &u.RegistrationDate, &u.EmployeeID)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

// Create ожидает уже захешированный пароль.
func (r *UserRepository) Create(ctx context.Context, tx pgx.Tx, u entities.User) (*entities.User, error) {
	query, args, err := psql.Insert(userTable).
		Columns("username", "email", "password", "is_active", "employee_id").
		Values(u.Username, u.Email, u.Password, u.IsActive, u.EmployeeID).
		Suffix("RETURNING " + userFields).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}
	return scanUser(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error) {
	query, args, err := psql.Select(userFields).From(userTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для users: %w", err)
	}
	return scanUser(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *UserRepository) List(ctx context.Context, p types.Pagination) ([]entities.User, error) {
	query, args, err := paginate(psql.Select(userFields).From(userTable).OrderBy("id"), p.Skip, p.Limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для users: %w", err)
	}
	rows, err := getQuerier(ctx, r.storage, nil).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func buildUserUpdate(id uint64, changes map[string]interface{}) (string, []interface{}, error) {
	columns := make([]string, 0, len(changes))
	for column := range changes {
		if !userUpdatableColumns[column] {
			return "", nil, apperrors.NewInvalidInputError("поле %s нельзя изменить", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	builder := psql.Update(userTable)
	for _, column := range columns {
		builder = builder.Set(column, changes[column])
	}
	return builder.Where(sq.Eq{"id": id}).Suffix("RETURNING " + userFields).ToSql()
}

// Update применяет частичные изменения; пароль в changes уже захеширован.
func (r *UserRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, changes map[string]interface{}) (*entities.User, error) {
	if len(changes) == 0 {
		return r.FindByID(ctx, tx, id)
	}
	query, args, err := buildUserUpdate(id, changes)
	if err != nil {
		return nil, err
	}
	return scanUser(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}

func (r *UserRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error) {
	query, args, err := psql.Delete(userTable).Where(sq.Eq{"id": id}).Suffix("RETURNING " + userFields).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса Delete: %w", err)
	}
	return scanUser(getQuerier(ctx, r.storage, tx).QueryRow(ctx, query, args...))
}
