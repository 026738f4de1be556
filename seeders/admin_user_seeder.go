package seeders

import (
	"context"
	"fmt"

	"hr-records/pkg/config"
	"hr-records/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// SeedAdminUser создает служебную учетную запись из SEED_ADMIN_*.
// Без email или пароля сидер пропускается.
func SeedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg config.SeederConfig, logger *zap.Logger) error {
	logger.Info("  - Запуск сидера администратора...")

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Info("    ℹ️  SEED_ADMIN_EMAIL или SEED_ADMIN_PASSWORD не заданы. Пропускаем создание.")
		return nil
	}

	hashedPassword, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	tag, err := db.Exec(ctx,
		`INSERT INTO users (username, email, password, is_active) VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT DO NOTHING`,
		cfg.AdminUsername, cfg.AdminEmail, hashedPassword,
	)
	if err != nil {
		return fmt.Errorf("ошибка SQL при создании администратора: %w", err)
	}

	if tag.RowsAffected() == 0 {
		logger.Info("    ℹ️  Администратор уже существует. Не трогаем.", zap.String("username", cfg.AdminUsername))
		return nil
	}
	logger.Info("    ✅ Администратор создан", zap.String("username", cfg.AdminUsername), zap.String("email", cfg.AdminEmail))
	return nil
}
