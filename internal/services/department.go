package services

import (
	"context"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/repositories"
	"hr-records/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const departmentNotFound = "Департамент не найден"

type DepartmentServiceInterface interface {
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error)
	GetDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
	GetDepartments(ctx context.Context, p types.Pagination) ([]dto.DepartmentDTO, error)
	GetDepartmentEmployees(ctx context.Context, id uint64) ([]dto.EmployeeDTO, error)
	UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
}

type DepartmentService struct {
	departmentRepository repositories.DepartmentRepositoryInterface
	employeeRepository   repositories.EmployeeRepositoryInterface
	txManager            repositories.TxManagerInterface
	logger               *zap.Logger
}

func NewDepartmentService(
	departmentRepository repositories.DepartmentRepositoryInterface,
	employeeRepository repositories.EmployeeRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepository: departmentRepository,
		employeeRepository:   employeeRepository,
		txManager:            txManager,
		logger:               logger,
	}
}

func departmentFromDTO(payload dto.CreateDepartmentDTO) entities.Department {
	return entities.Department{
		Name:        payload.Name,
		Description: payload.Description.Ptr(),
		ManagerID:   payload.ManagerID.Ptr(),
	}
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepository.Create(ctx, nil, departmentFromDTO(payload))
	if err != nil {
		s.logger.Error("Ошибка при создании департамента", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Департамент успешно создан", zap.Uint64("id", department.ID), zap.String("name", department.Name))
	result := toDepartmentDTO(*department)
	return &result, nil
}

func (s *DepartmentService) GetDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepository.FindByID(ctx, nil, id)
	if err != nil {
		return nil, notFound(err, departmentNotFound)
	}
	result := toDepartmentDTO(*department)
	return &result, nil
}

func (s *DepartmentService) GetDepartments(ctx context.Context, p types.Pagination) ([]dto.DepartmentDTO, error) {
	departments, err := s.departmentRepository.List(ctx, p)
	if err != nil {
		s.logger.Error("Ошибка при получении списка департаментов", zap.Error(err))
		return nil, err
	}
	return mapSlice(departments, toDepartmentDTO), nil
}

// GetDepartmentEmployees - обратная сторона employees.department_id.
func (s *DepartmentService) GetDepartmentEmployees(ctx context.Context, id uint64) ([]dto.EmployeeDTO, error) {
	if _, err := s.departmentRepository.FindByID(ctx, nil, id); err != nil {
		return nil, notFound(err, departmentNotFound)
	}
	employees, err := s.employeeRepository.ListByDepartment(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при получении сотрудников департамента", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return mapSlice(employees, toEmployeeDTO), nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, payload dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepository.Update(ctx, nil, id, departmentFromDTO(payload))
	if err != nil {
		s.logger.Error("Ошибка при обновлении департамента", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, departmentNotFound)
	}

	s.logger.Info("Департамент успешно обновлен", zap.Uint64("id", id))
	result := toDepartmentDTO(*department)
	return &result, nil
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	var deleted *entities.Department
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		department, err := s.departmentRepository.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.departmentRepository.Delete(ctx, tx, id); err != nil {
			return err
		}
		deleted = department
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при удалении департамента", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, departmentNotFound)
	}

	s.logger.Info("Департамент удален", zap.Uint64("id", id))
	result := toDepartmentDTO(*deleted)
	return &result, nil
}
