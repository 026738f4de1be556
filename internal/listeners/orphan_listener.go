package listeners

import (
	"context"
	"fmt"

	"hr-records/internal/events"
	"hr-records/pkg/eventbus"

	"go.uber.org/zap"
)

// OrphanListener предупреждает о записях, оставшихся без сотрудника после его удаления.
type OrphanListener struct {
	logger *zap.Logger
}

func NewOrphanListener(logger *zap.Logger) *OrphanListener {
	return &OrphanListener{logger: logger}
}

func (l *OrphanListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EmployeeDeleted, l.HandleEmployeeDeleted)
}

func (l *OrphanListener) HandleEmployeeDeleted(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EmployeeDeletedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", event)
	}

	if e.Dependents.Total() == 0 {
		l.logger.Debug("Удален сотрудник без связанных записей", zap.Uint64("employee_id", e.Employee.ID))
		return nil
	}

	l.logger.Warn("После удаления сотрудника остались записи без владельца",
		zap.Uint64("employee_id", e.Employee.ID),
		zap.String("employee_code", e.Employee.EmployeeCode),
		zap.Int64("documents", e.Dependents.Documents),
		zap.Int64("vacations", e.Dependents.Vacations),
		zap.Int64("users", e.Dependents.Users),
		zap.Int64("roles_unassigned", e.Dependents.Roles),
	)
	return nil
}
