package services

import (
	"hr-records/internal/dto"
	"hr-records/internal/entities"
)

func toShortEmployeeDTO(ref entities.EmployeeRef) dto.ShortEmployeeDTO {
	return dto.ShortEmployeeDTO{
		ID:           ref.ID,
		EmployeeCode: ref.EmployeeCode,
		LastName:     ref.LastName,
		FirstName:    ref.FirstName,
	}
}

func toEmployeeDTO(e entities.Employee) dto.EmployeeDTO {
	out := dto.EmployeeDTO{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		LastName:     e.LastName,
		FirstName:    e.FirstName,
		Position:     e.Position,
		HireDate:     dto.DatePtr(e.HireDate),
		Salary:       e.Salary,
		Status:       string(e.Status),
		DepartmentID: e.DepartmentID,
	}
	if e.ManagedDepartment != nil {
		out.ManagedDepartment = &dto.ShortDepartmentDTO{ID: e.ManagedDepartment.ID, Name: e.ManagedDepartment.Name}
	}
	return out
}

func toDepartmentDTO(d entities.Department) dto.DepartmentDTO {
	out := dto.DepartmentDTO{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ManagerID:   d.ManagerID,
	}
	if d.Manager != nil {
		manager := toShortEmployeeDTO(*d.Manager)
		out.Manager = &manager
	}
	return out
}

func toUserDTO(u entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		IsActive:         u.IsActive,
		RegistrationDate: u.RegistrationDate,
		EmployeeID:       u.EmployeeID,
	}
}

func toDocumentDTO(d entities.Document) dto.DocumentDTO {
	return dto.DocumentDTO{
		ID:             d.ID,
		EmployeeID:     d.EmployeeID,
		DocumentType:   string(d.DocumentType),
		FilePath:       d.FilePath,
		ExpirationDate: dto.DatePtr(d.ExpirationDate),
		UploadDate:     d.UploadDate,
	}
}

func toVacationDTO(v entities.Vacation) dto.VacationDTO {
	return dto.VacationDTO{
		ID:           v.ID,
		EmployeeID:   v.EmployeeID,
		StartDate:    dto.NewDate(v.StartDate),
		EndDate:      dto.NewDate(v.EndDate),
		VacationType: string(v.VacationType),
		Status:       string(v.Status),
		Notes:        v.Notes,
	}
}

func toRoleDTO(r entities.Role) dto.RoleDTO {
	out := dto.RoleDTO{
		ID:          r.ID,
		RoleType:    string(r.RoleType),
		StartDate:   dto.NewDate(r.StartDate),
		EndDate:     dto.DatePtr(r.EndDate),
		Status:      string(r.Status),
		EmployeeIDs: r.EmployeeIDs(),
		Employees:   mapSlice(r.Employees, toEmployeeDTO),
	}
	return out
}

// mapSlice применяет f к каждому элементу; пустой вход дает пустой, а не nil, срез.
func mapSlice[E any, D any](items []E, f func(E) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}
