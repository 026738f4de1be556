package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"hr-records/internal/dto"
	"hr-records/internal/entities"
	apperrors "hr-records/pkg/errors"
	"hr-records/pkg/eventbus"
	"hr-records/pkg/types"

	"github.com/jackc/pgx/v5"
)

func testDate(year int, month time.Month, day int) dto.Date {
	return dto.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	m.calls++
	return fn(nil)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// fakeEmployeeRepository хранит сотрудников в памяти и запоминает последние изменения.
type fakeEmployeeRepository struct {
	employees   map[uint64]entities.Employee
	dependents  entities.EmployeeDependents
	lastChanges map[string]interface{}
	createErr   error
	deleted     []uint64
}

func newFakeEmployeeRepository(employees ...entities.Employee) *fakeEmployeeRepository {
	r := &fakeEmployeeRepository{employees: make(map[uint64]entities.Employee)}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepository) Create(ctx context.Context, tx pgx.Tx, e entities.Employee) (*entities.Employee, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	e.ID = uint64(len(r.employees) + 1)
	if e.Status == "" {
		e.Status = entities.EmployeeStatusActive
	}
	r.employees[e.ID] = e
	return &e, nil
}

func (r *fakeEmployeeRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEmployeeRepository) FindByCode(ctx context.Context, tx pgx.Tx, code string) (*entities.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeCode == code {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEmployeeRepository) sorted() []entities.Employee {
	out := make([]entities.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeEmployeeRepository) List(ctx context.Context, p types.Pagination) ([]entities.Employee, error) {
	all := r.sorted()
	if p.Skip >= uint64(len(all)) {
		return []entities.Employee{}, nil
	}
	all = all[p.Skip:]
	if p.Limit < uint64(len(all)) {
		all = all[:p.Limit]
	}
	return all, nil
}

func (r *fakeEmployeeRepository) ListByDepartment(ctx context.Context, departmentID uint64) ([]entities.Employee, error) {
	out := make([]entities.Employee, 0)
	for _, e := range r.sorted() {
		if e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepository) SearchByLastName(ctx context.Context, fragment string) ([]entities.Employee, error) {
	return r.sorted(), nil
}

func (r *fakeEmployeeRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, changes map[string]interface{}) (*entities.Employee, error) {
	r.lastChanges = changes
	e, ok := r.employees[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if v, ok := changes["last_name"]; ok {
		e.LastName = v.(string)
	}
	if v, ok := changes["department_id"]; ok {
		e.DepartmentID = v.(*uint64)
	}
	r.employees[id] = e
	return &e, nil
}

func (r *fakeEmployeeRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	delete(r.employees, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeEmployeeRepository) CountDependents(ctx context.Context, tx pgx.Tx, id uint64) (entities.EmployeeDependents, error) {
	return r.dependents, nil
}

type fakeUserRepository struct {
	created     entities.User
	lastChanges map[string]interface{}
}

func (r *fakeUserRepository) Create(ctx context.Context, tx pgx.Tx, u entities.User) (*entities.User, error) {
	r.created = u
	u.ID = 1
	return &u, nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepository) List(ctx context.Context, p types.Pagination) ([]entities.User, error) {
	return []entities.User{}, nil
}

func (r *fakeUserRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, changes map[string]interface{}) (*entities.User, error) {
	r.lastChanges = changes
	return &entities.User{ID: id, Username: "alice", IsActive: true}, nil
}

func (r *fakeUserRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error) {
	return nil, apperrors.ErrNotFound
}

// fakeRoleRepository моделирует roles и employee_roles.
type fakeRoleRepository struct {
	roles     map[uint64]entities.Role
	links     map[uint64]map[uint64]struct{}
	employees map[uint64]entities.Employee

	added   []uint64
	removed []uint64
}

func newFakeRoleRepository(employeeIDs ...uint64) *fakeRoleRepository {
	r := &fakeRoleRepository{
		roles:     make(map[uint64]entities.Role),
		links:     make(map[uint64]map[uint64]struct{}),
		employees: make(map[uint64]entities.Employee),
	}
	for _, id := range employeeIDs {
		r.employees[id] = entities.Employee{ID: id, Status: entities.EmployeeStatusActive}
	}
	return r
}

func (r *fakeRoleRepository) Create(ctx context.Context, tx pgx.Tx, role entities.Role) (uint64, error) {
	role.ID = uint64(len(r.roles) + 1)
	r.roles[role.ID] = role
	r.links[role.ID] = make(map[uint64]struct{})
	return role.ID, nil
}

func (r *fakeRoleRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	ids, _ := r.AssignedEmployeeIDs(ctx, tx, id)
	role.Employees = make([]entities.Employee, 0, len(ids))
	for _, employeeID := range ids {
		role.Employees = append(role.Employees, r.employees[employeeID])
	}
	return &role, nil
}

func (r *fakeRoleRepository) List(ctx context.Context, p types.Pagination) ([]entities.Role, error) {
	return []entities.Role{}, nil
}

func (r *fakeRoleRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, role entities.Role) error {
	if _, ok := r.roles[id]; !ok {
		return apperrors.ErrNotFound
	}
	role.ID = id
	r.roles[id] = role
	return nil
}

func (r *fakeRoleRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	delete(r.roles, id)
	delete(r.links, id)
	return nil
}

func (r *fakeRoleRepository) ExistingEmployeeIDs(ctx context.Context, tx pgx.Tx, ids []uint64) ([]uint64, error) {
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.employees[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeRoleRepository) AssignedEmployeeIDs(ctx context.Context, tx pgx.Tx, roleID uint64) ([]uint64, error) {
	out := make([]uint64, 0, len(r.links[roleID]))
	for id := range r.links[roleID] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *fakeRoleRepository) AddEmployees(ctx context.Context, tx pgx.Tx, roleID uint64, employeeIDs []uint64) error {
	for _, id := range employeeIDs {
		r.links[roleID][id] = struct{}{}
	}
	r.added = append(r.added, employeeIDs...)
	return nil
}

func (r *fakeRoleRepository) RemoveEmployees(ctx context.Context, tx pgx.Tx, roleID uint64, employeeIDs []uint64) error {
	for _, id := range employeeIDs {
		delete(r.links[roleID], id)
	}
	r.removed = append(r.removed, employeeIDs...)
	return nil
}

// fakeDepartmentRepository перезаписывает запись целиком, как UPDATE всех колонок.
type fakeDepartmentRepository struct {
	departments map[uint64]entities.Department
	deleted     []uint64
}

func newFakeDepartmentRepository(departments ...entities.Department) *fakeDepartmentRepository {
	r := &fakeDepartmentRepository{departments: make(map[uint64]entities.Department)}
	for _, d := range departments {
		r.departments[d.ID] = d
	}
	return r
}

func (r *fakeDepartmentRepository) Create(ctx context.Context, tx pgx.Tx, d entities.Department) (*entities.Department, error) {
	d.ID = uint64(len(r.departments) + 1)
	r.departments[d.ID] = d
	return &d, nil
}

func (r *fakeDepartmentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDepartmentRepository) List(ctx context.Context, p types.Pagination) ([]entities.Department, error) {
	return []entities.Department{}, nil
}

func (r *fakeDepartmentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Department) (*entities.Department, error) {
	if _, ok := r.departments[id]; !ok {
		return nil, apperrors.ErrNotFound
	}
	d.ID = id
	r.departments[id] = d
	return &d, nil
}

func (r *fakeDepartmentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	if _, ok := r.departments[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.departments, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeDocumentRepository struct {
	documents map[uint64]entities.Document
}

func newFakeDocumentRepository(documents ...entities.Document) *fakeDocumentRepository {
	r := &fakeDocumentRepository{documents: make(map[uint64]entities.Document)}
	for _, d := range documents {
		r.documents[d.ID] = d
	}
	return r
}

func (r *fakeDocumentRepository) Create(ctx context.Context, tx pgx.Tx, d entities.Document) (*entities.Document, error) {
	d.ID = uint64(len(r.documents) + 1)
	d.UploadDate = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	r.documents[d.ID] = d
	return &d, nil
}

func (r *fakeDocumentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error) {
	d, ok := r.documents[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDocumentRepository) List(ctx context.Context, p types.Pagination) ([]entities.Document, error) {
	return []entities.Document{}, nil
}

// Update не трогает upload_date: колонка заполняется только при вставке.
func (r *fakeDocumentRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, d entities.Document) (*entities.Document, error) {
	current, ok := r.documents[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d.ID = id
	d.UploadDate = current.UploadDate
	r.documents[id] = d
	return &d, nil
}

func (r *fakeDocumentRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Document, error) {
	d, ok := r.documents[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.documents, id)
	return &d, nil
}

type fakeVacationRepository struct {
	vacations map[uint64]entities.Vacation
	updates   int
}

func newFakeVacationRepository(vacations ...entities.Vacation) *fakeVacationRepository {
	r := &fakeVacationRepository{vacations: make(map[uint64]entities.Vacation)}
	for _, v := range vacations {
		r.vacations[v.ID] = v
	}
	return r
}

func (r *fakeVacationRepository) Create(ctx context.Context, tx pgx.Tx, v entities.Vacation) (*entities.Vacation, error) {
	v.ID = uint64(len(r.vacations) + 1)
	r.vacations[v.ID] = v
	return &v, nil
}

func (r *fakeVacationRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vacation, error) {
	v, ok := r.vacations[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &v, nil
}

func (r *fakeVacationRepository) List(ctx context.Context, p types.Pagination) ([]entities.Vacation, error) {
	return []entities.Vacation{}, nil
}

func (r *fakeVacationRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, v entities.Vacation) (*entities.Vacation, error) {
	r.updates++
	if _, ok := r.vacations[id]; !ok {
		return nil, apperrors.ErrNotFound
	}
	v.ID = id
	r.vacations[id] = v
	return &v, nil
}

func (r *fakeVacationRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Vacation, error) {
	v, ok := r.vacations[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.vacations, id)
	return &v, nil
}
