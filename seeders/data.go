package seeders

import (
	"time"

	"github.com/shopspring/decimal"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var departmentsData = []struct {
	Name        string
	Description string
}{
	{Name: "Кардиология", Description: "Кардиологическое отделение"},
	{Name: "Неврология", Description: "Неврологическое отделение"},
	{Name: "Терапия", Description: "Терапевтическое отделение"},
	{Name: "Отдел кадров", Description: "Кадровый учет и документы сотрудников"},
}

var employeesData = []struct {
	Code       string
	LastName   string
	FirstName  string
	Position   string
	HireDate   time.Time
	Salary     decimal.Decimal
	Department string
}{
	{Code: "EMP-0001", LastName: "Петрова", FirstName: "Анна", Position: "Заведующая отделением", HireDate: date(2015, time.March, 1), Salary: decimal.RequireFromString("250000.00"), Department: "Кардиология"},
	{Code: "EMP-0002", LastName: "Орлов", FirstName: "Павел", Position: "Кардиолог", HireDate: date(2019, time.September, 16), Salary: decimal.RequireFromString("180000.00"), Department: "Кардиология"},
	{Code: "EMP-0003", LastName: "Смирнова", FirstName: "Елена", Position: "Заведующая отделением", HireDate: date(2012, time.February, 1), Salary: decimal.RequireFromString("245000.00"), Department: "Неврология"},
	{Code: "EMP-0004", LastName: "Ковалев", FirstName: "Игорь", Position: "Невролог", HireDate: date(2021, time.June, 1), Salary: decimal.RequireFromString("170000.00"), Department: "Неврология"},
	{Code: "EMP-0005", LastName: "Зайцева", FirstName: "Мария", Position: "Терапевт", HireDate: date(2020, time.January, 20), Salary: decimal.RequireFromString("150000.00"), Department: "Терапия"},
	{Code: "EMP-0006", LastName: "Белов", FirstName: "Андрей", Position: "Специалист по кадрам", HireDate: date(2018, time.November, 5), Salary: decimal.RequireFromString("120000.00"), Department: "Отдел кадров"},
}

// departmentManagers - руководитель департамента по табельному номеру.
var departmentManagers = map[string]string{
	"Кардиология": "EMP-0001",
	"Неврология":  "EMP-0003",
}
