package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

type Employee struct {
	ID           uint64              `json:"id" db:"id"`
	EmployeeCode string              `json:"employee_code" db:"employee_code"`
	LastName     string              `json:"last_name" db:"last_name"`
	FirstName    string              `json:"first_name" db:"first_name"`
	Position     *string             `json:"position" db:"position"`
	HireDate     *time.Time          `json:"hire_date" db:"hire_date"`
	Salary       decimal.NullDecimal `json:"salary" db:"salary"`
	Status       EmployeeStatus      `json:"status" db:"status"`
	DepartmentID *uint64             `json:"department_id" db:"department_id"`

	// Вычисляется по departments.manager_id, в таблице employees не хранится.
	ManagedDepartment *DepartmentRef `json:"managed_department,omitempty" db:"-"`
}

// EmployeeRef - краткая ссылка на сотрудника в чужих выборках.
type EmployeeRef struct {
	ID           uint64 `json:"id"`
	EmployeeCode string `json:"employee_code"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
}

// EmployeeDependents - записи, которые останутся без сотрудника после его удаления.
type EmployeeDependents struct {
	Documents int64
	Vacations int64
	Users     int64
	Roles     int64
}

func (d EmployeeDependents) Total() int64 {
	return d.Documents + d.Vacations + d.Users + d.Roles
}
