package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"continuum-server/internal/models"
)

const (
	getSettingValueQuery = `SELECT value FROM settings WHERE key = $1`

	upsertSettingQuery = `
        INSERT INTO settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET
            value = EXCLUDED.value,
            updated_at = NOW()
    `
)

// Compile-time check
var _ SettingsRepository = (*pgSettingsRepository)(nil)

type pgSettingsRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgSettingsRepository создает хранилище настроек поверх PostgreSQL.
func NewPgSettingsRepository(db DBTX, logger *zap.Logger) SettingsRepository {
	return &pgSettingsRepository{
		db:     db,
		logger: logger.Named("PgSettingsRepo"),
	}
}

func (r *pgSettingsRepository) GetValue(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, getSettingValueQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrNotFound
		}
		r.logger.Error("Error getting setting", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

func (r *pgSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	if _, err := r.db.Exec(ctx, upsertSettingQuery, key, value); err != nil {
		r.logger.Error("Error upserting setting", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}
	return nil
}
