package dto

import "time"

// CreateDocumentDTO используется и для обновления (полная перезапись).
type CreateDocumentDTO struct {
	EmployeeID     uint64   `json:"employee_id" validate:"required,gt=0"`
	DocumentType   string   `json:"document_type" validate:"required,oneof=passport employment_record contract other"`
	FilePath       string   `json:"file_path" validate:"required,max=255"`
	ExpirationDate NullDate `json:"expiration_date"`
}

type UpdateDocumentDTO = CreateDocumentDTO

type DocumentDTO struct {
	ID             uint64    `json:"id"`
	EmployeeID     *uint64   `json:"employee_id"`
	DocumentType   string    `json:"document_type"`
	FilePath       string    `json:"file_path"`
	ExpirationDate *Date     `json:"expiration_date"`
	UploadDate     time.Time `json:"upload_date"`
}
