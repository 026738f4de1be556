package entities

import "time"

type DocumentType string

const (
	DocumentTypePassport         DocumentType = "passport"
	DocumentTypeEmploymentRecord DocumentType = "employment_record"
	DocumentTypeContract         DocumentType = "contract"
	DocumentTypeOther            DocumentType = "other"
)

type Document struct {
	ID             uint64       `json:"id" db:"id"`
	EmployeeID     *uint64      `json:"employee_id" db:"employee_id"`
	DocumentType   DocumentType `json:"document_type" db:"document_type"`
	FilePath       string       `json:"file_path" db:"file_path"`
	ExpirationDate *time.Time   `json:"expiration_date" db:"expiration_date"`
	UploadDate     time.Time    `json:"upload_date" db:"upload_date"`
}
