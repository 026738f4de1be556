package seeders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SeedDemoData наполняет департаменты, сотрудников и руководителей.
// Повторный запуск ничего не дублирует.
func SeedDemoData(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	logger.Info("▶️  Запуск наполнения демо-данных...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := seedDepartments(ctx, tx, logger); err != nil {
		return fmt.Errorf("ошибка наполнения департаментов: %w", err)
	}
	if err := seedEmployees(ctx, tx, logger); err != nil {
		return fmt.Errorf("ошибка наполнения сотрудников: %w", err)
	}
	if err := seedManagers(ctx, tx, logger); err != nil {
		return fmt.Errorf("ошибка назначения руководителей: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	logger.Info("✅ Наполнение демо-данных завершено")
	return nil
}

func seedDepartments(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Наполнение таблицы 'departments'...")

	// У названия нет уникального ограничения, поэтому проверяем существование явно
	query := `INSERT INTO departments (name, description)
			  SELECT $1::varchar, $2::text
			  WHERE NOT EXISTS (SELECT 1 FROM departments WHERE name = $1::varchar)`

	for _, d := range departmentsData {
		if _, err := tx.Exec(ctx, query, d.Name, d.Description); err != nil {
			logger.Error("Ошибка при вставке департамента", zap.String("name", d.Name), zap.Error(err))
			return err
		}
	}
	return nil
}

func seedEmployees(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Наполнение таблицы 'employees'...")

	query := `INSERT INTO employees (employee_code, last_name, first_name, position, hire_date, salary, department_id)
			  VALUES ($1, $2, $3, $4, $5, $6,
			          (SELECT id FROM departments WHERE name = $7 ORDER BY id LIMIT 1))
			  ON CONFLICT (employee_code) DO NOTHING`

	var inserted int64
	for _, e := range employeesData {
		tag, err := tx.Exec(ctx, query, e.Code, e.LastName, e.FirstName, e.Position, e.HireDate, e.Salary, e.Department)
		if err != nil {
			logger.Error("Ошибка при вставке сотрудника", zap.String("employee_code", e.Code), zap.Error(err))
			return err
		}
		inserted += tag.RowsAffected()
	}
	logger.Info("    - Сотрудники добавлены", zap.Int64("inserted", inserted), zap.Int("total", len(employeesData)))
	return nil
}

func seedManagers(ctx context.Context, tx pgx.Tx, logger *zap.Logger) error {
	logger.Info("  - Назначение руководителей департаментов...")

	// Уже назначенного руководителя не трогаем
	query := `UPDATE departments
			  SET manager_id = (SELECT id FROM employees WHERE employee_code = $1)
			  WHERE name = $2 AND manager_id IS NULL`

	for department, code := range departmentManagers {
		if _, err := tx.Exec(ctx, query, code, department); err != nil {
			logger.Error("Ошибка при назначении руководителя",
				zap.String("department", department), zap.String("employee_code", code), zap.Error(err))
			return err
		}
	}
	return nil
}
