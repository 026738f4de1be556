package dto

import (
	"hr-records/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type CreateEmployeeDTO struct {
	EmployeeCode string              `json:"employee_code" validate:"required,max=60"`
	LastName     string              `json:"last_name" validate:"required,max=50"`
	FirstName    string              `json:"first_name" validate:"required,max=50"`
	Position     string              `json:"position" validate:"required,max=100"`
	HireDate     Date                `json:"hire_date" validate:"required"`
	Salary       decimal.NullDecimal `json:"salary" validate:"omitempty,money"`
	Status       string              `json:"status" validate:"omitempty,oneof=active inactive"`
	DepartmentID null.Uint64         `json:"department_id" validate:"omitempty,gt=0"`
}

// UpdateEmployeeDTO - частичное обновление: применяются только присланные поля.
type UpdateEmployeeDTO struct {
	EmployeeCode null.String         `json:"employee_code" validate:"omitempty,max=60"`
	LastName     null.String         `json:"last_name" validate:"omitempty,max=50"`
	FirstName    null.String         `json:"first_name" validate:"omitempty,max=50"`
	Position     null.String         `json:"position" validate:"omitempty,max=100"`
	HireDate     NullDate            `json:"hire_date"`
	Salary       decimal.NullDecimal `json:"salary" validate:"omitempty,money"`
	Status       null.String         `json:"status" validate:"omitempty,oneof=active inactive"`
	DepartmentID null.Uint64         `json:"department_id" validate:"omitempty,gt=0"`

	Fields types.Fields `json:"-" validate:"-"`
}

func (d UpdateEmployeeDTO) RejectNulls() error {
	return rejectNulls(d.Fields, map[string]bool{
		"employee_code": d.EmployeeCode.Valid && d.EmployeeCode.String != "",
		"last_name":     d.LastName.Valid && d.LastName.String != "",
		"first_name":    d.FirstName.Valid && d.FirstName.String != "",
		"status":        d.Status.Valid,
	})
}

type EmployeeDTO struct {
	ID                uint64              `json:"id"`
	EmployeeCode      string              `json:"employee_code"`
	LastName          string              `json:"last_name"`
	FirstName         string              `json:"first_name"`
	Position          *string             `json:"position"`
	HireDate          *Date               `json:"hire_date"`
	Salary            decimal.NullDecimal `json:"salary"`
	Status            string              `json:"status"`
	DepartmentID      *uint64             `json:"department_id"`
	ManagedDepartment *ShortDepartmentDTO `json:"managed_department"`
}
