package validation

import (
	"errors"
	"testing"
	"time"

	"hr-records/internal/dto"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(year int, month time.Month, day int) dto.Date {
	return dto.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func validEmployee() dto.CreateEmployeeDTO {
	return dto.CreateEmployeeDTO{
		EmployeeCode: "EMP-001",
		LastName:     "Иванов",
		FirstName:    "Иван",
		Position:     "Врач",
		HireDate:     testDate(2023, time.May, 1),
	}
}

// failedFields возвращает JSON-имена полей, не прошедших проверку.
func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "ожидались ошибки валидации, получено: %v", err)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field())
	}
	return fields
}

func TestValidate_CreateEmployee(t *testing.T) {
	v := New()

	t.Run("корректный сотрудник", func(t *testing.T) {
		e := validEmployee()
		e.Salary = decimal.NewNullDecimal(decimal.RequireFromString("150000.50"))
		e.DepartmentID = null.Uint64From(3)
		e.Status = "active"
		assert.NoError(t, v.Validate(e))
	})

	t.Run("без даты приема", func(t *testing.T) {
		e := validEmployee()
		e.HireDate = dto.Date{}
		assert.Equal(t, []string{"hire_date"}, failedFields(t, v.Validate(e)))
	})

	t.Run("пустые обязательные строки", func(t *testing.T) {
		e := validEmployee()
		e.LastName = ""
		e.EmployeeCode = ""
		assert.ElementsMatch(t, []string{"last_name", "employee_code"}, failedFields(t, v.Validate(e)))
	})

	t.Run("неизвестный статус", func(t *testing.T) {
		e := validEmployee()
		e.Status = "fired"
		assert.Equal(t, []string{"status"}, failedFields(t, v.Validate(e)))
	})

	t.Run("нулевой department_id", func(t *testing.T) {
		e := validEmployee()
		e.DepartmentID = null.Uint64From(0)
		assert.Equal(t, []string{"department_id"}, failedFields(t, v.Validate(e)))
	})
}

func TestValidate_ZeroReferenceIDs(t *testing.T) {
	v := New()

	cases := []struct {
		name  string
		input interface{}
		field string
	}{
		{"manager_id департамента", dto.CreateDepartmentDTO{Name: "Кардиология", ManagerID: null.Uint64From(0)}, "manager_id"},
		{"department_id при обновлении", dto.UpdateEmployeeDTO{DepartmentID: null.Uint64From(0)}, "department_id"},
		{"employee_id пользователя", dto.CreateUserDTO{Username: "anna", Email: "anna@clinic.example", Password: "secret", EmployeeID: null.Uint64From(0)}, "employee_id"},
		{"employee_id при обновлении пользователя", dto.UpdateUserDTO{EmployeeID: null.Uint64From(0)}, "employee_id"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, []string{c.field}, failedFields(t, v.Validate(c.input)))
		})
	}

	t.Run("null и положительный id проходят", func(t *testing.T) {
		assert.NoError(t, v.Validate(dto.CreateDepartmentDTO{Name: "Кардиология"}))
		assert.NoError(t, v.Validate(dto.CreateDepartmentDTO{Name: "Кардиология", ManagerID: null.Uint64From(1)}))
		assert.NoError(t, v.Validate(dto.UpdateEmployeeDTO{DepartmentID: null.Uint64FromPtr(nil)}))
	})
}

func TestValidate_Money(t *testing.T) {
	v := New()
	cases := []struct {
		salary string
		ok     bool
	}{
		{"0", true},
		{"99999999.99", true},
		{"1200.5", true},
		{"-1", false},
		{"100000000", false},
		{"10.123", false},
	}
	for _, tc := range cases {
		t.Run(tc.salary, func(t *testing.T) {
			e := validEmployee()
			e.Salary = decimal.NewNullDecimal(decimal.RequireFromString(tc.salary))
			err := v.Validate(e)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, []string{"salary"}, failedFields(t, err))
			}
		})
	}
}

func TestValidate_UpdateEmployee_NullFieldsSkipped(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(dto.UpdateEmployeeDTO{}))

	err := v.Validate(dto.UpdateEmployeeDTO{Status: null.StringFrom("fired")})
	assert.Equal(t, []string{"status"}, failedFields(t, err))
}

func TestValidate_UserEmail(t *testing.T) {
	v := New()
	u := dto.CreateUserDTO{Username: "alice", Email: "alice@example.com", Password: "secret"}
	assert.NoError(t, v.Validate(u))

	u.Email = "not-an-email"
	assert.Equal(t, []string{"email"}, failedFields(t, v.Validate(u)))

	assert.NoError(t, v.Validate(dto.UpdateUserDTO{}))
	err := v.Validate(dto.UpdateUserDTO{Email: null.StringFrom("broken@")})
	assert.Equal(t, []string{"email"}, failedFields(t, err))
}

func TestValidate_Role(t *testing.T) {
	v := New()
	r := dto.CreateRoleDTO{
		RoleType:    "medical",
		StartDate:   testDate(2024, time.January, 1),
		Status:      "planned",
		EmployeeIDs: []uint64{1, 2},
	}
	assert.NoError(t, v.Validate(r))

	r.EmployeeIDs = []uint64{1, 0}
	assert.Len(t, failedFields(t, v.Validate(r)), 1)

	r.EmployeeIDs = nil
	assert.Equal(t, []string{"employee_ids"}, failedFields(t, v.Validate(r)))
}

func TestValidate_Vacation(t *testing.T) {
	v := New()
	vac := dto.CreateVacationDTO{
		EmployeeID:   1,
		StartDate:    testDate(2024, time.July, 1),
		EndDate:      testDate(2024, time.July, 14),
		VacationType: "regular",
		Status:       "requested",
	}
	assert.NoError(t, v.Validate(vac))

	vac.VacationType = "maternity"
	vac.EndDate = dto.Date{}
	assert.ElementsMatch(t, []string{"vacation_type", "end_date"}, failedFields(t, v.Validate(vac)))
}
