package middleware

import (
	"net/http"

	"hr-records/pkg/database/postgresql"
	apperrors "hr-records/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DBSession выделяет запросу отдельное соединение из пула и кладет его в контекст.
// Соединение возвращается в пул на любом выходе из обработчика, включая панику.
func DBSession(pool *pgxpool.Pool, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			conn, err := pool.Acquire(req.Context())
			if err != nil {
				logger.Error("Не удалось получить соединение с БД", zap.Error(err))
				return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
					"status":  false,
					"message": apperrors.ErrNoSession.Error(),
				})
			}
			defer conn.Release()

			c.SetRequest(req.WithContext(postgresql.WithSession(req.Context(), conn)))
			return next(c)
		}
	}
}
