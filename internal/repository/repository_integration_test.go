//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
	"continuum-server/migrations"
	"continuum-server/pkg/migration"
)

// RepositoryTestSuite поднимает реальный PostgreSQL в контейнере и гоняет
// репозитории по настоящей схеме.
type RepositoryTestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	pgPool      *pgxpool.Pool
	logger      *zap.Logger

	projects repository.ProjectRepository
	assets   repository.AssetRepository
	variants repository.VariantRepository
	scenes   repository.SceneRepository
	settings repository.SettingsRepository
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	var err error

	s.logger, err = zap.NewDevelopment()
	require.NoError(s.T(), err, "Failed to create logger for tests")

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	pgConnStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "Failed to get postgres connection string")

	s.pgPool, err = pgxpool.New(s.ctx, pgConnStr)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	migrator := migration.NewMigrator(migration.Config{
		MigrationsPath: ".",
		MigrationsFS:   migrations.FS,
	}, s.pgPool)
	require.NoError(s.T(), migrator.Up(s.ctx), "Failed to run migrations")

	s.projects = repository.NewPgProjectRepository(s.pgPool, s.logger)
	s.assets = repository.NewPgAssetRepository(s.pgPool, s.logger)
	s.variants = repository.NewPgVariantRepository(s.pgPool, s.logger)
	s.scenes = repository.NewPgSceneRepository(s.pgPool, s.logger)
	s.settings = repository.NewPgSettingsRepository(s.pgPool, s.logger)
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *RepositoryTestSuite) SetupTest() {
	// Чистим данные между тестами, каскады уберут зависимые строки
	_, err := s.pgPool.Exec(s.ctx, "TRUNCATE projects, assets, variants, scenes, settings RESTART IDENTITY CASCADE")
	require.NoError(s.T(), err)
}

func (s *RepositoryTestSuite) createProject(name string) *models.Project {
	project := &models.Project{Name: name}
	require.NoError(s.T(), s.projects.Create(s.ctx, project))
	return project
}

func (s *RepositoryTestSuite) TestFindVisibleByName_CaseInsensitive() {
	project := s.createProject("film one")

	asset := &models.Asset{Name: "AnNa", Type: models.AssetTypeCharacter, ProjectID: &project.ID}
	s.Require().NoError(s.assets.Create(s.ctx, asset))

	found, err := s.assets.FindVisibleByName(s.ctx, "ANNA", project.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(asset.ID, found.ID)
}

func (s *RepositoryTestSuite) TestFindVisibleByName_SeesGlobalAssets() {
	project := s.createProject("film one")

	global := &models.Asset{Name: "Cinematic", Type: models.AssetTypeStyle, IsGlobal: true}
	s.Require().NoError(s.assets.Create(s.ctx, global))

	found, err := s.assets.FindVisibleByName(s.ctx, "cinematic", project.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(global.ID, found.ID)
}

func (s *RepositoryTestSuite) TestFindVisibleByName_IgnoresOtherProjects() {
	mine := s.createProject("mine")
	other := s.createProject("other")

	foreign := &models.Asset{Name: "ANNA", Type: models.AssetTypeCharacter, ProjectID: &other.ID}
	s.Require().NoError(s.assets.Create(s.ctx, foreign))

	found, err := s.assets.FindVisibleByName(s.ctx, "ANNA", mine.ID)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *RepositoryTestSuite) TestFindVisibleByName_LowestIDWinsOnDuplicate() {
	project := s.createProject("film one")

	first := &models.Asset{Name: "ANNA", Type: models.AssetTypeCharacter, ProjectID: &project.ID}
	s.Require().NoError(s.assets.Create(s.ctx, first))
	second := &models.Asset{Name: "anna", Type: models.AssetTypeCharacter, IsGlobal: true}
	s.Require().NoError(s.assets.Create(s.ctx, second))

	found, err := s.assets.FindVisibleByName(s.ctx, "Anna", project.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(first.ID, found.ID)
}

func (s *RepositoryTestSuite) TestVariantFindByName() {
	project := s.createProject("film one")
	asset := &models.Asset{Name: "ANNA", Type: models.AssetTypeCharacter, ProjectID: &project.ID}
	s.Require().NoError(s.assets.Create(s.ctx, asset))

	variant := &models.Variant{Name: "Medieval", AssetID: asset.ID, DeltaPrompt: `{"core":"linen dress"}`}
	s.Require().NoError(s.variants.Create(s.ctx, variant))

	found, err := s.variants.FindByName(s.ctx, asset.ID, "medieval")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(variant.ID, found.ID)

	missing, err := s.variants.FindByName(s.ctx, asset.ID, "Winter")
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *RepositoryTestSuite) TestSceneRoundTrip() {
	project := s.createProject("film one")

	scene := &models.Scene{Name: "Opening", ProjectID: project.ID, ActionText: "[ANNA] enters"}
	s.Require().NoError(s.scenes.Create(s.ctx, scene))
	s.Require().NotZero(scene.ID)

	scene.GeneratedPrompt = "a cinematic prompt"
	s.Require().NoError(s.scenes.Update(s.ctx, scene))

	loaded, err := s.scenes.GetByID(s.ctx, scene.ID)
	s.Require().NoError(err)
	s.Equal("a cinematic prompt", loaded.GeneratedPrompt)

	listed, err := s.scenes.List(s.ctx, &project.ID)
	s.Require().NoError(err)
	s.Len(listed, 1)
}

func (s *RepositoryTestSuite) TestSettingsUpsert() {
	_, err := s.settings.GetValue(s.ctx, "llm_provider")
	s.Require().ErrorIs(err, models.ErrNotFound)

	s.Require().NoError(s.settings.Upsert(s.ctx, "llm_provider", "openrouter"))
	value, err := s.settings.GetValue(s.ctx, "llm_provider")
	s.Require().NoError(err)
	s.Equal("openrouter", value)

	s.Require().NoError(s.settings.Upsert(s.ctx, "llm_provider", "lmstudio"))
	value, err = s.settings.GetValue(s.ctx, "llm_provider")
	s.Require().NoError(err)
	s.Equal("lmstudio", value)
}

func TestRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoryTestSuite))
}
