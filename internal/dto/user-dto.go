package dto

import (
	"time"

	"hr-records/pkg/types"

	"github.com/aarondl/null/v8"
)

type CreateUserDTO struct {
	Username   string      `json:"username" validate:"required,max=80"`
	Email      string      `json:"email" validate:"required,max=120,custom_email"`
	Password   string      `json:"password" validate:"required,max=72"`
	EmployeeID null.Uint64 `json:"employee_id" validate:"omitempty,gt=0"`
}

// UpdateUserDTO - частичное обновление; пароль, если прислан, хешируется заново.
type UpdateUserDTO struct {
	Username   null.String `json:"username" validate:"omitempty,max=80"`
	Email      null.String `json:"email" validate:"omitempty,max=120,custom_email"`
	Password   null.String `json:"password" validate:"omitempty,max=72"`
	IsActive   null.Bool   `json:"is_active"`
	EmployeeID null.Uint64 `json:"employee_id" validate:"omitempty,gt=0"`

	Fields types.Fields `json:"-" validate:"-"`
}

func (d UpdateUserDTO) RejectNulls() error {
	return rejectNulls(d.Fields, map[string]bool{
		"username":  d.Username.Valid && d.Username.String != "",
		"email":     d.Email.Valid && d.Email.String != "",
		"password":  d.Password.Valid && d.Password.String != "",
		"is_active": d.IsActive.Valid,
	})
}

// UserDTO никогда не содержит хеш пароля.
type UserDTO struct {
	ID               uint64    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	IsActive         bool      `json:"is_active"`
	RegistrationDate time.Time `json:"registration_date"`
	EmployeeID       *uint64   `json:"employee_id"`
}
