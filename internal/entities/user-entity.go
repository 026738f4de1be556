// Файл: internal/entities/user_entity.go
package entities

import "time"

type User struct {
	ID       uint64 `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	IsActive         bool      `json:"is_active" db:"is_active"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
	EmployeeID       *uint64   `json:"employee_id" db:"employee_id"`
}
