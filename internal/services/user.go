package services

import (
	"context"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/repositories"
	"hr-records/pkg/types"
	"hr-records/pkg/utils"

	"go.uber.org/zap"
)

const userNotFound = "Пользователь не найден"

type UserServiceInterface interface {
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUsers(ctx context.Context, p types.Pagination) ([]dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
}

type UserService struct {
	userRepository repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewUserService(userRepository repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{userRepository: userRepository, logger: logger}
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		s.logger.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepository.Create(ctx, nil, entities.User{
		Username:   payload.Username,
		Email:      payload.Email,
		Password:   hashedPassword,
		IsActive:   true,
		EmployeeID: payload.EmployeeID.Ptr(),
	})
	if err != nil {
		s.logger.Error("Ошибка при создании пользователя", zap.String("username", payload.Username), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Пользователь успешно создан", zap.Uint64("id", user.ID), zap.String("username", user.Username))
	result := toUserDTO(*user)
	return &result, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindByID(ctx, nil, id)
	if err != nil {
		return nil, notFound(err, userNotFound)
	}
	result := toUserDTO(*user)
	return &result, nil
}

func (s *UserService) GetUsers(ctx context.Context, p types.Pagination) ([]dto.UserDTO, error) {
	users, err := s.userRepository.List(ctx, p)
	if err != nil {
		s.logger.Error("Ошибка при получении списка пользователей", zap.Error(err))
		return nil, err
	}
	return mapSlice(users, toUserDTO), nil
}

// userChanges переводит присланные поля в колонки; пароль хешируется.
func userChanges(payload dto.UpdateUserDTO) (map[string]interface{}, error) {
	changes := make(map[string]interface{})
	f := payload.Fields
	if f.Has("username") {
		changes["username"] = payload.Username.String
	}
	if f.Has("email") {
		changes["email"] = payload.Email.String
	}
	if f.Has("password") {
		hashed, err := utils.HashPassword(payload.Password.String)
		if err != nil {
			return nil, err
		}
		changes["password"] = hashed
	}
	if f.Has("is_active") {
		changes["is_active"] = payload.IsActive.Bool
	}
	if f.Has("employee_id") {
		changes["employee_id"] = payload.EmployeeID.Ptr()
	}
	return changes, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	if err := payload.RejectNulls(); err != nil {
		return nil, err
	}

	changes, err := userChanges(payload)
	if err != nil {
		s.logger.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepository.Update(ctx, nil, id, changes)
	if err != nil {
		s.logger.Error("Ошибка при обновлении пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, userNotFound)
	}

	s.logger.Info("Пользователь успешно обновлен", zap.Uint64("id", id), zap.Int("fields", payload.Fields.Len()))
	result := toUserDTO(*user)
	return &result, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.Delete(ctx, nil, id)
	if err != nil {
		s.logger.Error("Ошибка при удалении пользователя", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, userNotFound)
	}

	s.logger.Info("Пользователь удален", zap.Uint64("id", id))
	result := toUserDTO(*user)
	return &result, nil
}
