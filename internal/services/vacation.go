package services

import (
	"context"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/repositories"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"

	"go.uber.org/zap"
)

const vacationNotFound = "Отпуск не найден"

type VacationServiceInterface interface {
	CreateVacation(ctx context.Context, payload dto.CreateVacationDTO) (*dto.VacationDTO, error)
	GetVacation(ctx context.Context, id uint64) (*dto.VacationDTO, error)
	GetVacations(ctx context.Context, p types.Pagination) ([]dto.VacationDTO, error)
	UpdateVacation(ctx context.Context, id uint64, payload dto.UpdateVacationDTO) (*dto.VacationDTO, error)
	DeleteVacation(ctx context.Context, id uint64) (*dto.VacationDTO, error)
}

type VacationService struct {
	vacationRepository repositories.VacationRepositoryInterface
	logger             *zap.Logger
}

func NewVacationService(vacationRepository repositories.VacationRepositoryInterface, logger *zap.Logger) *VacationService {
	return &VacationService{vacationRepository: vacationRepository, logger: logger}
}

func vacationFromDTO(payload dto.CreateVacationDTO) (entities.Vacation, error) {
	if payload.EndDate.Before(payload.StartDate.Time) {
		return entities.Vacation{}, apperrors.NewInvalidInputError("дата окончания отпуска (%s) раньше даты начала (%s)",
			payload.EndDate.Format(dto.DateLayout), payload.StartDate.Format(dto.DateLayout))
	}
	employeeID := payload.EmployeeID
	return entities.Vacation{
		EmployeeID:   &employeeID,
		StartDate:    payload.StartDate.Time,
		EndDate:      payload.EndDate.Time,
		VacationType: entities.VacationType(payload.VacationType),
		Status:       entities.VacationStatus(payload.Status),
		Notes:        payload.Notes.Ptr(),
	}, nil
}

func (s *VacationService) CreateVacation(ctx context.Context, payload dto.CreateVacationDTO) (*dto.VacationDTO, error) {
	vacation, err := vacationFromDTO(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.vacationRepository.Create(ctx, nil, vacation)
	if err != nil {
		s.logger.Error("Ошибка при создании отпуска", zap.Uint64("employee_id", payload.EmployeeID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Отпуск успешно создан", zap.Uint64("id", created.ID))
	result := toVacationDTO(*created)
	return &result, nil
}

func (s *VacationService) GetVacation(ctx context.Context, id uint64) (*dto.VacationDTO, error) {
	vacation, err := s.vacationRepository.FindByID(ctx, nil, id)
	if err != nil {
		return nil, notFound(err, vacationNotFound)
	}
	result := toVacationDTO(*vacation)
	return &result, nil
}

func (s *VacationService) GetVacations(ctx context.Context, p types.Pagination) ([]dto.VacationDTO, error) {
	vacations, err := s.vacationRepository.List(ctx, p)
	if err != nil {
		s.logger.Error("Ошибка при получении списка отпусков", zap.Error(err))
		return nil, err
	}
	return mapSlice(vacations, toVacationDTO), nil
}

func (s *VacationService) UpdateVacation(ctx context.Context, id uint64, payload dto.UpdateVacationDTO) (*dto.VacationDTO, error) {
	vacation, err := vacationFromDTO(payload)
	if err != nil {
		return nil, err
	}

	updated, err := s.vacationRepository.Update(ctx, nil, id, vacation)
	if err != nil {
		s.logger.Error("Ошибка при обновлении отпуска", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, vacationNotFound)
	}

	s.logger.Info("Отпуск успешно обновлен", zap.Uint64("id", id))
	result := toVacationDTO(*updated)
	return &result, nil
}

func (s *VacationService) DeleteVacation(ctx context.Context, id uint64) (*dto.VacationDTO, error) {
	vacation, err := s.vacationRepository.Delete(ctx, nil, id)
	if err != nil {
		s.logger.Error("Ошибка при удалении отпуска", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, vacationNotFound)
	}

	s.logger.Info("Отпуск удален", zap.Uint64("id", id))
	result := toVacationDTO(*vacation)
	return &result, nil
}
