package dto

import "github.com/aarondl/null/v8"

// CreateVacationDTO используется и для обновления (полная перезапись).
type CreateVacationDTO struct {
	EmployeeID   uint64      `json:"employee_id" validate:"required,gt=0"`
	StartDate    Date        `json:"start_date" validate:"required"`
	EndDate      Date        `json:"end_date" validate:"required"`
	VacationType string      `json:"vacation_type" validate:"required,oneof=regular sick unpaid"`
	Status       string      `json:"status" validate:"required,oneof=requested approved rejected"`
	Notes        null.String `json:"notes"`
}

type UpdateVacationDTO = CreateVacationDTO

type VacationDTO struct {
	ID           uint64  `json:"id"`
	EmployeeID   *uint64 `json:"employee_id"`
	StartDate    Date    `json:"start_date"`
	EndDate      Date    `json:"end_date"`
	VacationType string  `json:"vacation_type"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
}
