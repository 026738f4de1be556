package dto

// CreateRoleDTO используется и для обновления: набор сотрудников заменяется целиком.
type CreateRoleDTO struct {
	RoleType    string   `json:"role_type" validate:"required,oneof=sector medical"`
	StartDate   Date     `json:"start_date" validate:"required"`
	EndDate     NullDate `json:"end_date"`
	Status      string   `json:"status" validate:"required,oneof=planned approved"`
	EmployeeIDs []uint64 `json:"employee_ids" validate:"required,dive,gt=0"`
}

type UpdateRoleDTO = CreateRoleDTO

type RoleDTO struct {
	ID          uint64        `json:"id"`
	RoleType    string        `json:"role_type"`
	StartDate   Date          `json:"start_date"`
	EndDate     *Date         `json:"end_date"`
	Status      string        `json:"status"`
	EmployeeIDs []uint64      `json:"employee_ids"`
	Employees   []EmployeeDTO `json:"employees"`
}
