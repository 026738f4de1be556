package dto

import "github.com/aarondl/null/v8"

// CreateDepartmentDTO используется и для создания, и для обновления:
// обновление департамента перезаписывает все поля.
type CreateDepartmentDTO struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description null.String `json:"description"`
	ManagerID   null.Uint64 `json:"manager_id" validate:"omitempty,gt=0"`
}

type UpdateDepartmentDTO = CreateDepartmentDTO

type DepartmentDTO struct {
	ID          uint64            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	ManagerID   *uint64           `json:"manager_id"`
	Manager     *ShortEmployeeDTO `json:"manager"`
}
