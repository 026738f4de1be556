package entities

import "time"

type RoleType string

const (
	RoleTypeSector  RoleType = "sector"
	RoleTypeMedical RoleType = "medical"
)

type RoleStatus string

const (
	RoleStatusPlanned  RoleStatus = "planned"
	RoleStatusApproved RoleStatus = "approved"
)

type Role struct {
	ID        uint64     `json:"id" db:"id"`
	RoleType  RoleType   `json:"role_type" db:"role_type"`
	StartDate time.Time  `json:"start_date" db:"start_date"`
	EndDate   *time.Time `json:"end_date" db:"end_date"`
	Status    RoleStatus `json:"status" db:"status"`

	// Заполняется из employee_roles.
	Employees []Employee `json:"employees" db:"-"`
}

func (r Role) EmployeeIDs() []uint64 {
	ids := make([]uint64, 0, len(r.Employees))
	for _, e := range r.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}
