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
	listProjectsQuery = `
        SELECT id, name, description, created_at, updated_at
        FROM projects
        ORDER BY created_at DESC
    `
	getProjectByIDQuery = `
        SELECT id, name, description, created_at, updated_at
        FROM projects
        WHERE id = $1
    `
	createProjectQuery = `
        INSERT INTO projects (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `
	updateProjectQuery = `
        UPDATE projects
        SET name = $2, description = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `
	deleteProjectQuery = `DELETE FROM projects WHERE id = $1`
)

// Compile-time check
var _ ProjectRepository = (*pgProjectRepository)(nil)

type pgProjectRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgProjectRepository создает репозиторий проектов поверх PostgreSQL.
func NewPgProjectRepository(db DBTX, logger *zap.Logger) ProjectRepository {
	return &pgProjectRepository{
		db:     db,
		logger: logger.Named("PgProjectRepo"),
	}
}

func (r *pgProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := pgxscan.Select(ctx, r.db, &projects, listProjectsQuery); err != nil {
		r.logger.Error("Error listing projects", zap.Error(err))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

func (r *pgProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := pgxscan.Get(ctx, r.db, &project, getProjectByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		r.logger.Error("Error getting project by id", zap.Int64("projectID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return &project, nil
}

func (r *pgProjectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.db.QueryRow(ctx, createProjectQuery, project.Name, project.Description).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		r.logger.Error("Error creating project", zap.String("name", project.Name), zap.Error(err))
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *pgProjectRepository) Update(ctx context.Context, project *models.Project) error {
	err := r.db.QueryRow(ctx, updateProjectQuery, project.ID, project.Name, project.Description).
		Scan(&project.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNotFound
		}
		r.logger.Error("Error updating project", zap.Int64("projectID", project.ID), zap.Error(err))
		return fmt.Errorf("failed to update project %d: %w", project.ID, err)
	}
	return nil
}

func (r *pgProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		r.logger.Error("Error deleting project", zap.Int64("projectID", id), zap.Error(err))
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
