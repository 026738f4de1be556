package services

import (
	"context"
	"testing"
	"time"

	"hr-records/internal/dto"
	apperrors "hr-records/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func roleDTO(employeeIDs ...uint64) dto.CreateRoleDTO {
	return dto.CreateRoleDTO{
		RoleType:    "medical",
		StartDate:   testDate(2024, time.January, 1),
		Status:      "planned",
		EmployeeIDs: employeeIDs,
	}
}

func TestDiffIDs(t *testing.T) {
	added, removed := diffIDs([]uint64{1, 2}, []uint64{3, 2})
	assert.Equal(t, []uint64{3}, added)
	assert.Equal(t, []uint64{1}, removed)

	added, removed = diffIDs(nil, nil)
	assert.Empty(t, added)
	assert.Empty(t, removed)

	added, removed = diffIDs([]uint64{5, 4}, []uint64{4, 5})
	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint64{3, 1, 2}, uniqueIDs([]uint64{3, 1, 3, 2, 1}))
}

func TestRoleService_Create_SkipsUnknownEmployees(t *testing.T) {
	repo := newFakeRoleRepository(1, 2)
	svc := NewRoleService(repo, &fakeTxManager{}, zap.NewNop())

	role, err := svc.CreateRole(context.Background(), roleDTO(1, 2, 2, 99))
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2}, role.EmployeeIDs)
	require.Len(t, role.Employees, 2)
	assert.Equal(t, uint64(1), role.Employees[0].ID)
	assert.Equal(t, "active", role.Employees[0].Status)
	assert.Equal(t, "medical", role.RoleType)
	assert.Nil(t, role.EndDate)
}

func TestRoleService_Update_AppliesDiff(t *testing.T) {
	repo := newFakeRoleRepository(1, 2, 3)
	svc := NewRoleService(repo, &fakeTxManager{}, zap.NewNop())

	created, err := svc.CreateRole(context.Background(), roleDTO(1, 2))
	require.NoError(t, err)
	repo.added, repo.removed = nil, nil

	payload := roleDTO(2, 3)
	payload.Status = "approved"
	updated, err := svc.UpdateRole(context.Background(), created.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, []uint64{3}, repo.added, "добавляется только новая пара")
	assert.Equal(t, []uint64{1}, repo.removed, "удаляется только исчезнувшая пара")
	assert.Equal(t, []uint64{2, 3}, updated.EmployeeIDs)
	assert.Equal(t, "approved", updated.Status)
}

func TestRoleService_Update_NotFound(t *testing.T) {
	svc := NewRoleService(newFakeRoleRepository(), &fakeTxManager{}, zap.NewNop())

	_, err := svc.UpdateRole(context.Background(), 5, roleDTO())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRoleService_RejectsEndBeforeStart(t *testing.T) {
	repo := newFakeRoleRepository(1)
	tx := &fakeTxManager{}
	svc := NewRoleService(repo, tx, zap.NewNop())

	payload := roleDTO(1)
	payload.EndDate = dto.NullDateFrom(testDate(2023, time.December, 31))

	_, err := svc.CreateRole(context.Background(), payload)
	var inputErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Zero(t, tx.calls)
}

func TestRoleService_Delete_ReturnsLastState(t *testing.T) {
	repo := newFakeRoleRepository(1)
	svc := NewRoleService(repo, &fakeTxManager{}, zap.NewNop())

	created, err := svc.CreateRole(context.Background(), roleDTO(1))
	require.NoError(t, err)

	deleted, err := svc.DeleteRole(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, deleted.EmployeeIDs)

	_, err = svc.GetRole(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
