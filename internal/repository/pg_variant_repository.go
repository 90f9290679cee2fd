package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"continuum-server/internal/models"
)

const (
	variantColumns = `id, name, delta_prompt, asset_id, created_at, updated_at`

	listVariantsByAssetQuery = `
        SELECT ` + variantColumns + `
        FROM variants
        WHERE asset_id = $1
        ORDER BY name
    `
	getVariantByIDQuery = `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`

	createVariantQuery = `
        INSERT INTO variants (name, delta_prompt, asset_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `
	updateVariantQuery = `
        UPDATE variants
        SET name = $2, delta_prompt = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `
	deleteVariantQuery = `DELETE FROM variants WHERE id = $1`

	// Тот же tie-break, что и у ассетов: при дубликатах имен побеждает
	// наименьший id.
	findVariantByNameQuery = `
        SELECT ` + variantColumns + `
        FROM variants
        WHERE asset_id = $1 AND LOWER(name) = LOWER($2)
        ORDER BY id
        LIMIT 1
    `
)

// Compile-time check
var _ VariantRepository = (*pgVariantRepository)(nil)

type pgVariantRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgVariantRepository создает репозиторий вариантов поверх PostgreSQL.
func NewPgVariantRepository(db DBTX, logger *zap.Logger) VariantRepository {
	return &pgVariantRepository{
		db:     db,
		logger: logger.Named("PgVariantRepo"),
	}
}

func (r *pgVariantRepository) ListByAsset(ctx context.Context, assetID int64) ([]models.Variant, error) {
	var variants []models.Variant
	if err := pgxscan.Select(ctx, r.db, &variants, listVariantsByAssetQuery, assetID); err != nil {
		r.logger.Error("Error listing variants", zap.Int64("assetID", assetID), zap.Error(err))
		return nil, fmt.Errorf("failed to list variants of asset %d: %w", assetID, err)
	}
	if variants == nil {
		variants = []models.Variant{}
	}
	return variants, nil
}

func (r *pgVariantRepository) GetByID(ctx context.Context, id int64) (*models.Variant, error) {
	var variant models.Variant
	err := pgxscan.Get(ctx, r.db, &variant, getVariantByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Error getting variant by id", zap.Int64("variantID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get variant %d: %w", id, err)
	}
	return &variant, nil
}

func (r *pgVariantRepository) Create(ctx context.Context, variant *models.Variant) error {
	err := r.db.QueryRow(ctx, createVariantQuery,
		variant.Name, variant.DeltaPrompt, variant.AssetID).
		Scan(&variant.ID, &variant.CreatedAt, &variant.UpdatedAt)
	if err != nil {
		r.logger.Error("Error creating variant",
			zap.String("name", variant.Name), zap.Int64("assetID", variant.AssetID), zap.Error(err))
		return fmt.Errorf("failed to create variant: %w", err)
	}
	return nil
}

func (r *pgVariantRepository) Update(ctx context.Context, variant *models.Variant) error {
	err := r.db.QueryRow(ctx, updateVariantQuery,
		variant.ID, variant.Name, variant.DeltaPrompt).
		Scan(&variant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Error updating variant", zap.Int64("variantID", variant.ID), zap.Error(err))
		return fmt.Errorf("failed to update variant %d: %w", variant.ID, err)
	}
	return nil
}

func (r *pgVariantRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteVariantQuery, id)
	if err != nil {
		r.logger.Error("Error deleting variant", zap.Int64("variantID", id), zap.Error(err))
		return fmt.Errorf("failed to delete variant %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgVariantRepository) FindByName(ctx context.Context, assetID int64, name string) (*models.Variant, error) {
	var variant models.Variant
	err := pgxscan.Get(ctx, r.db, &variant, findVariantByNameQuery, assetID, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Ссылка на несуществующий вариант — не ошибка: берется база
			return nil, nil
		}
		r.logger.Error("Error finding variant by name",
			zap.Int64("assetID", assetID), zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to find variant %q: %w", name, err)
	}
	return &variant, nil
}
