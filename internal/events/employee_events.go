package events

import "hr-records/internal/entities"

const EmployeeDeleted = "employee.deleted"

// EmployeeDeletedEvent возникает после удаления сотрудника. Dependents - сколько
// записей ссылалось на него в момент удаления (их employee_id стал NULL).
type EmployeeDeletedEvent struct {
	Employee   entities.Employee
	Dependents entities.EmployeeDependents
}

// Name - реализуем интерфейс eventbus.Event
func (e EmployeeDeletedEvent) Name() string {
	return EmployeeDeleted
}
