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
	sceneColumns = `id, name, project_id, shot_type_id, style_id, lighting_id,
        action_text, generated_prompt, created_at, updated_at`

	listScenesQuery          = `SELECT ` + sceneColumns + ` FROM scenes ORDER BY created_at`
	listScenesByProjectQuery = `SELECT ` + sceneColumns + ` FROM scenes WHERE project_id = $1 ORDER BY created_at`
	getSceneByIDQuery        = `SELECT ` + sceneColumns + ` FROM scenes WHERE id = $1`

	createSceneQuery = `
        INSERT INTO scenes (name, project_id, shot_type_id, style_id, lighting_id, action_text, generated_prompt)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	updateSceneQuery = `
        UPDATE scenes
        SET name = $2, shot_type_id = $3, style_id = $4, lighting_id = $5,
            action_text = $6, generated_prompt = $7, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `
	deleteSceneQuery = `DELETE FROM scenes WHERE id = $1`
)

// Compile-time check
var _ SceneRepository = (*pgSceneRepository)(nil)

type pgSceneRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgSceneRepository создает репозиторий сцен поверх PostgreSQL.
func NewPgSceneRepository(db DBTX, logger *zap.Logger) SceneRepository {
	return &pgSceneRepository{
		db:     db,
		logger: logger.Named("PgSceneRepo"),
	}
}

func (r *pgSceneRepository) List(ctx context.Context, projectID *int64) ([]models.Scene, error) {
	var scenes []models.Scene
	var err error
	if projectID != nil {
		err = pgxscan.Select(ctx, r.db, &scenes, listScenesByProjectQuery, *projectID)
	} else {
		err = pgxscan.Select(ctx, r.db, &scenes, listScenesQuery)
	}
	if err != nil {
		r.logger.Error("Error listing scenes", zap.Error(err))
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}
	if scenes == nil {
		scenes = []models.Scene{}
	}
	return scenes, nil
}

func (r *pgSceneRepository) GetByID(ctx context.Context, id int64) (*models.Scene, error) {
	var scene models.Scene
	err := pgxscan.Get(ctx, r.db, &scene, getSceneByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Error getting scene by id", zap.Int64("sceneID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get scene %d: %w", id, err)
	}
	return &scene, nil
}

func (r *pgSceneRepository) Create(ctx context.Context, scene *models.Scene) error {
	err := r.db.QueryRow(ctx, createSceneQuery,
		scene.Name, scene.ProjectID, scene.ShotTypeID, scene.StyleID, scene.LightingID,
		scene.ActionText, scene.GeneratedPrompt).
		Scan(&scene.ID, &scene.CreatedAt, &scene.UpdatedAt)
	if err != nil {
		r.logger.Error("Error creating scene", zap.String("name", scene.Name), zap.Error(err))
		return fmt.Errorf("failed to create scene: %w", err)
	}
	return nil
}

func (r *pgSceneRepository) Update(ctx context.Context, scene *models.Scene) error {
	err := r.db.QueryRow(ctx, updateSceneQuery,
		scene.ID, scene.Name, scene.ShotTypeID, scene.StyleID, scene.LightingID,
		scene.ActionText, scene.GeneratedPrompt).
		Scan(&scene.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Error updating scene", zap.Int64("sceneID", scene.ID), zap.Error(err))
		return fmt.Errorf("failed to update scene %d: %w", scene.ID, err)
	}
	return nil
}

func (r *pgSceneRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteSceneQuery, id)
	if err != nil {
		r.logger.Error("Error deleting scene", zap.Int64("sceneID", id), zap.Error(err))
		return fmt.Errorf("failed to delete scene %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
