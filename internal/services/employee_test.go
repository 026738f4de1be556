package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	"hr-records/internal/events"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func newEmployeeService(repo *fakeEmployeeRepository) (*EmployeeService, *fakePublisher, *fakeTxManager) {
	bus := &fakePublisher{}
	tx := &fakeTxManager{}
	return NewEmployeeService(repo, tx, bus, zap.NewNop()), bus, tx
}

func TestEmployeeService_Create(t *testing.T) {
	repo := newFakeEmployeeRepository()
	svc, _, _ := newEmployeeService(repo)

	created, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeDTO{
		EmployeeCode: "EMP-001",
		LastName:     "Петрова",
		FirstName:    "Анна",
		Position:     "Кардиолог",
		HireDate:     testDate(2022, time.September, 1),
		Salary:       decimal.NewNullDecimal(decimal.RequireFromString("120000.00")),
		DepartmentID: null.Uint64From(4),
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, "active", created.Status, "статус по умолчанию - active")
	require.NotNil(t, created.HireDate)
	assert.Equal(t, "2022-09-01", created.HireDate.Format(dto.DateLayout))
	require.NotNil(t, created.DepartmentID)
	assert.Equal(t, uint64(4), *created.DepartmentID)
	assert.Equal(t, "120000", created.Salary.Decimal.String())
}

func TestEmployeeService_Create_PassesConflictThrough(t *testing.T) {
	repo := newFakeEmployeeRepository()
	repo.createErr = apperrors.NewHttpError(http.StatusConflict, "Сотрудник с таким табельным номером уже существует", apperrors.ErrConflict, nil)
	svc, _, _ := newEmployeeService(repo)

	_, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeDTO{EmployeeCode: "EMP-001"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	svc, _, _ := newEmployeeService(newFakeEmployeeRepository())

	_, err := svc.GetEmployee(context.Background(), 42)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
	assert.Equal(t, employeeNotFound, httpErr.Message)

	_, err = svc.GetEmployeeByCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEmployeeService_GetEmployees_Paginates(t *testing.T) {
	repo := newFakeEmployeeRepository(
		entities.Employee{ID: 1, LastName: "А"},
		entities.Employee{ID: 2, LastName: "Б"},
		entities.Employee{ID: 3, LastName: "В"},
	)
	svc, _, _ := newEmployeeService(repo)

	page, err := svc.GetEmployees(context.Background(), types.Pagination{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint64(2), page[0].ID)

	empty, err := svc.GetEmployees(context.Background(), types.Pagination{Skip: 10, Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestEmployeeService_Update_OnlySentFields(t *testing.T) {
	repo := newFakeEmployeeRepository(entities.Employee{ID: 1, LastName: "Петрова", FirstName: "Анна", DepartmentID: uint64Ptr(4)})
	svc, _, _ := newEmployeeService(repo)

	updated, err := svc.UpdateEmployee(context.Background(), 1, dto.UpdateEmployeeDTO{
		LastName: null.StringFrom("Сидорова"),
		Fields:   types.NewFields("last_name"),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"last_name": "Сидорова"}, repo.lastChanges)
	assert.Equal(t, "Сидорова", updated.LastName)
	assert.Equal(t, "Анна", updated.FirstName)
	require.NotNil(t, updated.DepartmentID)
}

func TestEmployeeService_Update_NullClearsNullableColumn(t *testing.T) {
	repo := newFakeEmployeeRepository(entities.Employee{ID: 1, LastName: "Петрова", DepartmentID: uint64Ptr(4)})
	svc, _, _ := newEmployeeService(repo)

	updated, err := svc.UpdateEmployee(context.Background(), 1, dto.UpdateEmployeeDTO{
		Fields: types.NewFields("department_id"),
	})
	require.NoError(t, err)

	require.Contains(t, repo.lastChanges, "department_id")
	assert.Nil(t, repo.lastChanges["department_id"])
	assert.Nil(t, updated.DepartmentID)
}

func TestEmployeeService_Update_RejectsNullOnRequiredColumn(t *testing.T) {
	repo := newFakeEmployeeRepository(entities.Employee{ID: 1, LastName: "Петрова"})
	svc, _, _ := newEmployeeService(repo)

	_, err := svc.UpdateEmployee(context.Background(), 1, dto.UpdateEmployeeDTO{
		Fields: types.NewFields("last_name"),
	})
	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Nil(t, repo.lastChanges, "репозиторий не должен вызываться")
}

func TestEmployeeService_Update_EmptyBody(t *testing.T) {
	repo := newFakeEmployeeRepository(entities.Employee{ID: 1, LastName: "Петрова"})
	svc, _, _ := newEmployeeService(repo)

	updated, err := svc.UpdateEmployee(context.Background(), 1, dto.UpdateEmployeeDTO{Fields: types.NewFields()})
	require.NoError(t, err)
	assert.Empty(t, repo.lastChanges)
	assert.Equal(t, "Петрова", updated.LastName)

	_, err = svc.UpdateEmployee(context.Background(), 99, dto.UpdateEmployeeDTO{Fields: types.NewFields()})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	repo := newFakeEmployeeRepository(entities.Employee{ID: 7, EmployeeCode: "EMP-007", LastName: "Орлов"})
	repo.dependents = entities.EmployeeDependents{Documents: 2, Vacations: 1}
	svc, bus, tx := newEmployeeService(repo)

	deleted, err := svc.DeleteEmployee(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "EMP-007", deleted.EmployeeCode, "возвращается последнее состояние")
	assert.Equal(t, []uint64{7}, repo.deleted)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, bus.events, 1)
	event, ok := bus.events[0].(events.EmployeeDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(7), event.Employee.ID)
	assert.Equal(t, int64(3), event.Dependents.Total())
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	repo := newFakeEmployeeRepository()
	svc, bus, _ := newEmployeeService(repo)

	_, err := svc.DeleteEmployee(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, repo.deleted)
	assert.Empty(t, bus.events, "событие публикуется только после удаления")
}
