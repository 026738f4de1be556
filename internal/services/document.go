package services

import (
	"context"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/repositories"
	"hr-records/pkg/types"

	"go.uber.org/zap"
)

const documentNotFound = "Документ не найден"

type DocumentServiceInterface interface {
	CreateDocument(ctx context.Context, payload dto.CreateDocumentDTO) (*dto.DocumentDTO, error)
	GetDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error)
	GetDocuments(ctx context.Context, p types.Pagination) ([]dto.DocumentDTO, error)
	UpdateDocument(ctx context.Context, id uint64, payload dto.UpdateDocumentDTO) (*dto.DocumentDTO, error)
	DeleteDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error)
}

type DocumentService struct {
	documentRepository repositories.DocumentRepositoryInterface
	logger             *zap.Logger
}

func NewDocumentService(documentRepository repositories.DocumentRepositoryInterface, logger *zap.Logger) *DocumentService {
	return &DocumentService{documentRepository: documentRepository, logger: logger}
}

func documentFromDTO(payload dto.CreateDocumentDTO) entities.Document {
	employeeID := payload.EmployeeID
	return entities.Document{
		EmployeeID:     &employeeID,
		DocumentType:   entities.DocumentType(payload.DocumentType),
		FilePath:       payload.FilePath,
		ExpirationDate: payload.ExpirationDate.Ptr(),
	}
}

func (s *DocumentService) CreateDocument(ctx context.Context, payload dto.CreateDocumentDTO) (*dto.DocumentDTO, error) {
	document, err := s.documentRepository.Create(ctx, nil, documentFromDTO(payload))
	if err != nil {
		s.logger.Error("Ошибка при создании документа", zap.Uint64("employee_id", payload.EmployeeID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Документ успешно создан", zap.Uint64("id", document.ID))
	result := toDocumentDTO(*document)
	return &result, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error) {
	document, err := s.documentRepository.FindByID(ctx, nil, id)
	if err != nil {
		return nil, notFound(err, documentNotFound)
	}
	result := toDocumentDTO(*document)
	return &result, nil
}

func (s *DocumentService) GetDocuments(ctx context.Context, p types.Pagination) ([]dto.DocumentDTO, error) {
	documents, err := s.documentRepository.List(ctx, p)
	if err != nil {
		s.logger.Error("Ошибка при получении списка документов", zap.Error(err))
		return nil, err
	}
	return mapSlice(documents, toDocumentDTO), nil
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id uint64, payload dto.UpdateDocumentDTO) (*dto.DocumentDTO, error) {
	document, err := s.documentRepository.Update(ctx, nil, id, documentFromDTO(payload))
	if err != nil {
		s.logger.Error("Ошибка при обновлении документа", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, documentNotFound)
	}

	s.logger.Info("Документ успешно обновлен", zap.Uint64("id", id))
	result := toDocumentDTO(*document)
	return &result, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id uint64) (*dto.DocumentDTO, error) {
	document, err := s.documentRepository.Delete(ctx, nil, id)
	if err != nil {
		s.logger.Error("Ошибка при удалении документа", zap.Uint64("id", id), zap.Error(err))
		return nil, notFound(err, documentNotFound)
	}

	s.logger.Info("Документ удален", zap.Uint64("id", id))
	result := toDocumentDTO(*document)
	return &result, nil
}
