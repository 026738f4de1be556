package entities

type Department struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
	ManagerID   *uint64 `json:"manager_id" db:"manager_id"`

	Manager *EmployeeRef `json:"manager,omitempty" db:"-"`
}

type DepartmentRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
