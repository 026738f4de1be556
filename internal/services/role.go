package services

import (
	"context"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/repositories"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const roleNotFound = "Роль не найдена"

type RoleServiceInterface interface {
	CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error)
	GetRole(ctx context.Context, id uint64) (*dto.RoleDTO, error)
	GetRoles(ctx context.Context, p types.Pagination) ([]dto.RoleDTO, error)
	UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*dto.RoleDTO, error)
	DeleteRole(ctx context.Context, id uint64) (*dto.RoleDTO, error)
}

type RoleService struct {
	roleRepository repositories.RoleRepositoryInterface
	txManager      repositories.TxManagerInterface
	logger         *zap.Logger
}

func NewRoleService(
	roleRepository repositories.RoleRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{
		roleRepository: roleRepository,
		txManager:      txManager,
		logger:         logger,
	}
}

func roleFromDTO(payload dto.CreateRoleDTO) (entities.Role, error) {
	endDate := payload.EndDate.Ptr()
	if endDate != nil && endDate.Before(payload.StartDate.Time) {
		return entities.Role{}, apperrors.NewInvalidInputError("дата окончания роли (%s) раньше даты начала (%s)",
			endDate.Format(dto.DateLayout), payload.StartDate.Format(dto.DateLayout))
	}
	return entities.Role{
		RoleType:  entities.RoleType(payload.RoleType),
		StartDate: payload.StartDate.Time,
		EndDate:   endDate,
		Status:    entities.RoleStatus(payload.Status),
	}, nil
}

// CreateRole создает роль и привязывает к ней существующих сотрудников.
// Несуществующие id молча пропускаются.
func (s *RoleService) CreateRole(ctx context.Context, payload dto.CreateRoleDTO) (*dto.RoleDTO, error) {
	role, err := roleFromDTO(payload)
	if err != nil {
		return nil, err
	}

	var created *entities.Role
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.roleRepository.Create(ctx, tx, role)
		if err != nil {
			return err
		}
		employeeIDs, err := s.roleRepository.ExistingEmployeeIDs(ctx, tx, uniqueIDs(payload.EmployeeIDs))
		if err != nil {
			return err
		}
		if err := s.roleRepository.AddEmployees(ctx, tx, id, employeeIDs); err != nil {
			return err
		}
		created, err = s.roleRepository.FindByID(ctx, tx, id)
		return err
	})
	if err != nil {
		s.logger.Error("Ошибка при создании роли", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Роль успешно создана", zap.Uint64("id", created.ID), zap.Int("employees", len(created.Employees)))
	result := toRoleDTO(*created)
	return &result, nil
}

func (s *RoleService) GetRole(ctx context.Context, id uint64) (*dto.RoleDTO, error) {
	role, err := s.roleRepository.FindByID(ctx, nil, id)
	if err != nil {
		return nil, notFound(err, roleNotFound)
	}
	result := toRoleDTO(*role)
	return &result, nil
}

func (s *RoleService) GetRoles(ctx context.Context, p types.Pagination) ([]dto.RoleDTO, error) {
	roles, err := s.roleRepository.List(ctx, p)
	if err != nil {
		s.logger.Error("Ошибка при получении списка ролей", zap.Error(err))
		return nil, err
	}
	return mapSlice(roles, toRoleDTO), nil
}

// UpdateRole перезаписывает роль целиком. Набор сотрудников заменяется
// присланным, но в БД пишутся только добавленные и удаленные пары.
func (s *RoleService) UpdateRole(ctx context.Context, id uint64, payload dto.UpdateRoleDTO) (*dto.RoleDTO, error) {
	role, err := roleFromDTO(payload)
	if err != nil {
		return nil, err
	}

	var updated *entities.Role
	var added, removed []uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.roleRepository.Update(ctx, tx, id, role); err != nil {
			return err
		}
		desired, err := s.roleRepository.ExistingEmployeeIDs(ctx, tx, uniqueIDs(payload.EmployeeIDs))
		if err != nil {
			return err
		}
		current, err := s.roleRepository.AssignedEmployeeIDs(ctx, tx, id)
		if err != nil {
			return err
		}
		added, removed = diffIDs(current, desired)
		if err := s.roleRepository.RemoveEmployees(ctx, tx, id, removed); err != nil {
			return err
		}
		if err := s.roleRepository.AddEmployees(ctx, tx, id, added); err != nil {
			return err
		}
		updated, err = s.roleRepository.FindByID(ctx, tx, id)
		return err
	})
	if err != nil {
		s.logger.Error("Ошибка при обновлении роли", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, roleNotFound)
	}

	s.logger.Info("Роль успешно обновлена",
		zap.Uint64("id", id),
		zap.Uint64s("added", added),
		zap.Uint64s("removed", removed),
	)
	result := toRoleDTO(*updated)
	return &result, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint64) (*dto.RoleDTO, error) {
	var deleted *entities.Role
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		role, err := s.roleRepository.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.roleRepository.Delete(ctx, tx, id); err != nil {
			return err
		}
		deleted = role
		return nil
	})
	if err != nil {
		s.logger.Error("Ошибка при удалении роли", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, roleNotFound)
	}

	s.logger.Info("Роль удалена", zap.Uint64("id", id))
	result := toRoleDTO(*deleted)
	return &result, nil
}
