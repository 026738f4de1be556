package services

import (
	"context"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/events"
	"hr-records/internal/repositories"
	"hr-records/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const employeeNotFound = "Сотрудник не найден"

type EmployeeServiceInterface interface {
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error)
	GetEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
	GetEmployeeByCode(ctx context.Context, code string) (*dto.EmployeeDTO, error)
	GetEmployees(ctx context.Context, p types.Pagination) ([]dto.EmployeeDTO, error)
	SearchEmployees(ctx context.Context, lastName string) ([]dto.EmployeeDTO, error)
	UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error)
	DeleteEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error)
}

type EmployeeService struct {
	employeeRepository repositories.EmployeeRepositoryInterface
	txManager          repositories.TxManagerInterface
	bus                EventPublisher
	logger             *zap.Logger
}

func NewEmployeeService(
	employeeRepository repositories.EmployeeRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus EventPublisher,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		employeeRepository: employeeRepository,
		txManager:          txManager,
		bus:                bus,
		logger:             logger,
	}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*dto.EmployeeDTO, error) {
	position := payload.Position
	employee := entities.Employee{
		EmployeeCode: payload.EmployeeCode,
		LastName:     payload.LastName,
		FirstName:    payload.FirstName,
		Position:     &position,
		HireDate:     payload.HireDate.Ptr(),
		Salary:       payload.Salary,
		Status:       entities.EmployeeStatus(payload.Status),
		DepartmentID: payload.DepartmentID.Ptr(),
	}

	created, err := s.employeeRepository.Create(ctx, nil, employee)
	if err != nil {
		s.logger.Error("Ошибка при создании сотрудника", zap.String("employee_code", payload.EmployeeCode), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Сотрудник успешно создан", zap.Uint64("id", created.ID), zap.String("employee_code", created.EmployeeCode))
	result := toEmployeeDTO(*created)
	return &result, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepository.FindByID(ctx, nil, id)
	if err != nil {
		return nil, notFound(err, employeeNotFound)
	}
	result := toEmployeeDTO(*employee)
	return &result, nil
}

func (s *EmployeeService) GetEmployeeByCode(ctx context.Context, code string) (*dto.EmployeeDTO, error) {
	employee, err := s.employeeRepository.FindByCode(ctx, nil, code)
	if err != nil {
		return nil, notFound(err, employeeNotFound)
	}
	result := toEmployeeDTO(*employee)
	return &result, nil
}

func (s *EmployeeService) GetEmployees(ctx context.Context, p types.Pagination) ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepository.List(ctx, p)
	if err != nil {
		s.logger.Error("Ошибка при получении списка сотрудников", zap.Error(err))
		return nil, err
	}
	return mapSlice(employees, toEmployeeDTO), nil
}

func (s *EmployeeService) SearchEmployees(ctx context.Context, lastName string) ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepository.SearchByLastName(ctx, lastName)
	if err != nil {
		s.logger.Error("Ошибка при поиске сотрудников", zap.String("last_name", lastName), zap.Error(err))
		return nil, err
	}
	return mapSlice(employees, toEmployeeDTO), nil
}

// employeeChanges переводит присланные поля в колонки таблицы.
func employeeChanges(payload dto.UpdateEmployeeDTO) map[string]interface{} {
	changes := make(map[string]interface{})
	f := payload.Fields
	if f.Has("employee_code") {
		changes["employee_code"] = payload.EmployeeCode.String
	}
	if f.Has("last_name") {
		changes["last_name"] = payload.LastName.String
	}
	if f.Has("first_name") {
		changes["first_name"] = payload.FirstName.String
	}
	if f.Has("position") {
		changes["position"] = payload.Position.Ptr()
	}
	if f.Has("hire_date") {
		changes["hire_date"] = payload.HireDate.Ptr()
	}
	if f.Has("salary") {
		changes["salary"] = payload.Salary
	}
	if f.Has("status") {
		changes["status"] = payload.Status.String
	}
	if f.Has("department_id") {
		changes["department_id"] = payload.DepartmentID.Ptr()
	}
	return changes
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*dto.EmployeeDTO, error) {
	if err := payload.RejectNulls(); err != nil {
		return nil, err
	}

	updated, err := s.employeeRepository.Update(ctx, nil, id, employeeChanges(payload))
	if err != nil {
		s.logger.Error("Ошибка при обновлении сотрудника", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, employeeNotFound)
	}

	s.logger.Info("Сотрудник успешно обновлен", zap.Uint64("id", id), zap.Int("fields", payload.Fields.Len()))
	result := toEmployeeDTO(*updated)
	return &result, nil
}

// DeleteEmployee удаляет сотрудника и возвращает его последнее состояние.
// Документы, отпуска и пользователи остаются с пустым employee_id.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) (*dto.EmployeeDTO, error) {
	var deleted *entities.Employee
	var dependents entities.EmployeeDependents

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		employee, err := s.employeeRepository.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		dependents, err = s.employeeRepository.CountDependents(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.employeeRepository.Delete(ctx, tx, id); err != nil {
			return err
		}
		deleted = employee
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при удалении сотрудника", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, employeeNotFound)
	}

	s.bus.Publish(ctx, events.EmployeeDeletedEvent{Employee: *deleted, Dependents: dependents})
	s.logger.Info("Сотрудник удален", zap.Uint64("id", id))

	result := toEmployeeDTO(*deleted)
	return &result, nil
}
