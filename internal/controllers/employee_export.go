package controllers

import (
	"fmt"

	"hr-records/internal/dto"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	employeesSheet  = "Сотрудники"
)

var employeeHeaders = []interface{}{
	"ID", "Табельный номер", "Фамилия", "Имя", "Должность", "Дата приема",
	"Оклад", "Статус", "ID департамента", "Руководит департаментом",
}

func employeeToRow(e dto.EmployeeDTO) []interface{} {
	var position, hireDate, salary, departmentID, managed string
	if e.Position != nil {
		position = *e.Position
	}
	if e.HireDate != nil {
		hireDate = e.HireDate.Format(dto.DateLayout)
	}
	if e.Salary.Valid {
		salary = e.Salary.Decimal.StringFixed(2)
	}
	if e.DepartmentID != nil {
		departmentID = fmt.Sprintf("%d", *e.DepartmentID)
	}
	if e.ManagedDepartment != nil {
		managed = e.ManagedDepartment.Name
	}
	return []interface{}{
		e.ID, e.EmployeeCode, e.LastName, e.FirstName, position, hireDate,
		salary, e.Status, departmentID, managed,
	}
}

func buildEmployeesWorkbook(employees []dto.EmployeeDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return nil, fmt.Errorf("ошибка создания листа: %w", err)
	}
	if err := f.SetSheetRow(employeesSheet, "A1", &employeeHeaders); err != nil {
		return nil, fmt.Errorf("ошибка записи заголовка: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(employeesSheet, "A1", "J1", style)
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := employeeToRow(e)
		if err := f.SetSheetRow(employeesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("ошибка записи строки %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(employeesSheet, "B", "E", 20)
	_ = f.SetColWidth(employeesSheet, "J", "J", 30)
	return f, nil
}
