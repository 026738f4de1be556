package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type sessionKey struct{}

// WithSession кладет выделенное на запрос соединение в контекст.
func WithSession(ctx context.Context, conn *pgxpool.Conn) context.Context {
	return context.WithValue(ctx, sessionKey{}, conn)
}

// SessionFromContext возвращает соединение текущего запроса, если оно есть.
func SessionFromContext(ctx context.Context) (*pgxpool.Conn, bool) {
	conn, ok := ctx.Value(sessionKey{}).(*pgxpool.Conn)
	return conn, ok && conn != nil
}
