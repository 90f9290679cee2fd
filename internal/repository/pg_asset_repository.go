package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"continuum-server/internal/models"
)

const (
	assetColumns = `id, name, type, base_prompt, project_id, is_global, created_at, updated_at`

	getAssetByIDQuery = `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	createAssetQuery = `
        INSERT INTO assets (name, type, base_prompt, project_id, is_global)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `
	updateAssetQuery = `
        UPDATE assets
        SET name = $2, type = $3, base_prompt = $4, project_id = $5, is_global = $6, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `
	deleteAssetQuery = `DELETE FROM assets WHERE id = $1`

	// Предикат видимости при разрешении ссылок: имя без учета регистра,
	// ассет либо принадлежит проекту, либо глобален. ORDER BY id LIMIT 1 —
	// документированный детерминированный tie-break: при коллизии имен
	// (проектный vs глобальный, дубликаты в одной области) побеждает
	// наименьший id.
	findVisibleByNameQuery = `
        SELECT ` + assetColumns + `
        FROM assets
        WHERE LOWER(name) = LOWER($1) AND (project_id = $2 OR is_global = TRUE)
        ORDER BY id
        LIMIT 1
    `
	findGlobalByTypeAndNameQuery = `
        SELECT ` + assetColumns + `
        FROM assets
        WHERE type = $1 AND is_global = TRUE AND name = $2
        ORDER BY id
        LIMIT 1
    `
)

// Compile-time check
var _ AssetRepository = (*pgAssetRepository)(nil)

type pgAssetRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgAssetRepository создает репозиторий ассетов поверх PostgreSQL.
func NewPgAssetRepository(db DBTX, logger *zap.Logger) AssetRepository {
	return &pgAssetRepository{
		db:     db,
		logger: logger.Named("PgAssetRepo"),
	}
}

func (r *pgAssetRepository) List(ctx context.Context, filter AssetFilter) ([]models.Asset, error) {
	// Список фильтров собирается динамически: заданы могут быть любые из трех
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.ProjectID != nil {
		args = append(args, *filter.ProjectID)
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.IsGlobal != nil {
		args = append(args, *filter.IsGlobal)
		conditions = append(conditions, fmt.Sprintf("is_global = $%d", len(args)))
	}

	query := `SELECT ` + assetColumns + ` FROM assets`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	var assets []models.Asset
	if err := pgxscan.Select(ctx, r.db, &assets, query, args...); err != nil {
		r.logger.Error("Error listing assets", zap.Error(err))
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	return assets, nil
}

func (r *pgAssetRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	var asset models.Asset
	err := pgxscan.Get(ctx, r.db, &asset, getAssetByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Error getting asset by id", zap.Int64("assetID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get asset %d: %w", id, err)
	}
	return &asset, nil
}

func (r *pgAssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	err := r.db.QueryRow(ctx, createAssetQuery,
		asset.Name, asset.Type, asset.BasePrompt, asset.ProjectID, asset.IsGlobal).
		Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		r.logger.Error("Error creating asset", zap.String("name", asset.Name), zap.Error(err))
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *pgAssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	err := r.db.QueryRow(ctx, updateAssetQuery,
		asset.ID, asset.Name, asset.Type, asset.BasePrompt, asset.ProjectID, asset.IsGlobal).
		Scan(&asset.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Error updating asset", zap.Int64("assetID", asset.ID), zap.Error(err))
		return fmt.Errorf("failed to update asset %d: %w", asset.ID, err)
	}
	return nil
}

func (r *pgAssetRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteAssetQuery, id)
	if err != nil {
		r.logger.Error("Error deleting asset", zap.Int64("assetID", id), zap.Error(err))
		return fmt.Errorf("failed to delete asset %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgAssetRepository) FindVisibleByName(ctx context.Context, name string, projectID int64) (*models.Asset, error) {
	var asset models.Asset
	err := pgxscan.Get(ctx, r.db, &asset, findVisibleByNameQuery, name, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Несуществующее имя — штатная ситуация при разрешении тегов
			return nil, nil
		}
		r.logger.Error("Error finding asset by name",
			zap.String("name", name), zap.Int64("projectID", projectID), zap.Error(err))
		return nil, fmt.Errorf("failed to find asset by name %q: %w", name, err)
	}
	return &asset, nil
}

func (r *pgAssetRepository) FindGlobalByTypeAndName(ctx context.Context, assetType models.AssetType, name string) (*models.Asset, error) {
	var asset models.Asset
	err := pgxscan.Get(ctx, r.db, &asset, findGlobalByTypeAndNameQuery, assetType, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Error finding global asset",
			zap.String("type", string(assetType)), zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to find global asset %q: %w", name, err)
	}
	return &asset, nil
}
