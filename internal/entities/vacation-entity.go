package entities

import "time"

type VacationType string

const (
	VacationTypeRegular VacationType = "regular"
	VacationTypeSick    VacationType = "sick"
	VacationTypeUnpaid  VacationType = "unpaid"
)

type VacationStatus string

const (
	VacationStatusRequested VacationStatus = "requested"
	VacationStatusApproved  VacationStatus = "approved"
	VacationStatusRejected  VacationStatus = "rejected"
)

type Vacation struct {
	ID           uint64         `json:"id" db:"id"`
	EmployeeID   *uint64        `json:"employee_id" db:"employee_id"`
	StartDate    time.Time      `json:"start_date" db:"start_date"`
	EndDate      time.Time      `json:"end_date" db:"end_date"`
	VacationType VacationType   `json:"vacation_type" db:"vacation_type"`
	Status       VacationStatus `json:"status" db:"status"`
	Notes        *string        `json:"notes" db:"notes"`
}
