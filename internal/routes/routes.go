package routes

import (
	"hr-records/internal/controllers"
	"hr-records/internal/repositories"
	"hr-records/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Services - все сервисы, которые обслуживают HTTP-маршруты.
type Services struct {
	Employee   services.EmployeeServiceInterface
	Department services.DepartmentServiceInterface
	User       services.UserServiceInterface
	Document   services.DocumentServiceInterface
	Vacation   services.VacationServiceInterface
	Role       services.RoleServiceInterface
}

// NewServices собирает репозитории и сервисы поверх пула.
func NewServices(dbConn *pgxpool.Pool, bus services.EventPublisher, logger *zap.Logger) *Services {
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	employeeRepo := repositories.NewEmployeeRepository(dbConn, logger)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	documentRepo := repositories.NewDocumentRepository(dbConn, logger)
	vacationRepo := repositories.NewVacationRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn, logger)

	// --- 2. СЕРВИСЫ ---
	return &Services{
		Employee:   services.NewEmployeeService(employeeRepo, txManager, bus, logger),
		Department: services.NewDepartmentService(departmentRepo, employeeRepo, txManager, logger),
		User:       services.NewUserService(userRepo, logger),
		Document:   services.NewDocumentService(documentRepo, logger),
		Vacation:   services.NewVacationService(vacationRepo, logger),
		Role:       services.NewRoleService(roleRepo, txManager, logger),
	}
}

// InitRouter регистрирует CRUD-маршруты всех сущностей. middlewares
// применяются ко всей группе (например, выделение сессии БД).
func InitRouter(e *echo.Echo, svc *Services, logger *zap.Logger, middlewares ...echo.MiddlewareFunc) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("", middlewares...)

	runEmployeeRouter(api, controllers.NewEmployeeController(svc.Employee, logger))
	runDepartmentRouter(api, controllers.NewDepartmentController(svc.Department, logger))
	runUserRouter(api, controllers.NewUserController(svc.User, logger))
	runDocumentRouter(api, controllers.NewDocumentController(svc.Document, logger))
	runVacationRouter(api, controllers.NewVacationController(svc.Vacation, logger))
	runRoleRouter(api, controllers.NewRoleController(svc.Role, logger))

	logger.Info("InitRouter: Создание маршрутов завершено")
}
