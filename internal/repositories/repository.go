package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hr-records/pkg/database/postgresql"
	apperrors "hr-records/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier - общее подмножество pgx.Tx, *pgxpool.Conn и *pgxpool.Pool.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// constraintMessages - понятные сообщения для нарушений именованных ограничений.
var constraintMessages = map[string]string{
	"employees_employee_code_key":     "Сотрудник с таким табельным номером уже существует",
	"users_username_key":              "Пользователь с таким именем уже существует",
	"users_email_key":                 "Пользователь с таким email уже существует",
	"departments_manager_id_key":      "Сотрудник уже руководит другим департаментом",
	"employees_department_id_fkey":    "Указанный департамент не существует",
	"departments_manager_id_fkey":     "Указанный руководитель не существует",
	"users_employee_id_fkey":          "Указанный сотрудник не существует",
	"documents_employee_id_fkey":      "Указанный сотрудник не существует",
	"vacations_employee_id_fkey":      "Указанный сотрудник не существует",
	"employee_roles_employee_id_fkey": "Указанный сотрудник не существует",
	"employee_roles_role_id_fkey":     "Указанная роль не существует",
}

// getQuerier - транзакция, если есть; иначе соединение текущего запроса; иначе пул.
func getQuerier(ctx context.Context, storage *pgxpool.Pool, tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	if conn, ok := postgresql.SessionFromContext(ctx); ok {
		return conn
	}
	return storage
}

// translateError переводит ошибки pgx и Postgres в ошибки приложения.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		message, ok := constraintMessages[pgErr.ConstraintName]
		if !ok {
			message = apperrors.ErrConflict.Error()
		}
		return apperrors.NewHttpError(http.StatusConflict, message, fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrConflict), nil)
	case pgForeignKeyViolation:
		message, ok := constraintMessages[pgErr.ConstraintName]
		if !ok {
			message = apperrors.ErrInvalidReference.Error()
		}
		return apperrors.NewHttpError(http.StatusBadRequest, message, fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrInvalidReference), nil)
	case pgCheckViolation:
		return apperrors.NewHttpError(http.StatusBadRequest, "Недопустимое значение поля", fmt.Errorf("%s: %w", pgErr.ConstraintName, apperrors.ErrBadRequest), nil)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует метасимволы LIKE, чтобы фрагмент искался буквально.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func paginate(b sq.SelectBuilder, skip, limit uint64) sq.SelectBuilder {
	return b.Offset(skip).Limit(limit)
}
