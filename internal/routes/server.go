package routes

import (
	"net/http"

	"hr-records/internal/controllers"
	"hr-records/internal/services"
	"hr-records/pkg/config"
	appmiddleware "hr-records/pkg/middleware"
	"hr-records/pkg/utils"
	"hr-records/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// NewEcho создает echo с общими middleware и валидатором, без маршрутов.
func NewEcho(cfg config.ServerConfig, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		_ = utils.ErrorResponse(c, err, logger)
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Паника в обработчике",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.ByteString("stack", stack),
			)
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	return e
}

// NewServer - полностью собранный HTTP-сервер приложения.
func NewServer(cfg config.ServerConfig, dbConn *pgxpool.Pool, bus services.EventPublisher, logger *zap.Logger) *echo.Echo {
	e := NewEcho(cfg, logger)

	health := controllers.NewHealthController(dbConn, logger)
	e.GET("/health", health.Health)

	InitRouter(e, NewServices(dbConn, bus, logger), logger, appmiddleware.DBSession(dbConn, logger))
	return e
}
