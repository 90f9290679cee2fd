package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"continuum-server/internal/ai"
	"continuum-server/internal/repository"
	"continuum-server/internal/service"
)

// Handler обрабатывает HTTP запросы API.
type Handler struct {
	projects   repository.ProjectRepository
	assets     repository.AssetRepository
	variants   repository.VariantRepository
	scenes     repository.SceneRepository
	settings   repository.SettingsRepository
	aggregator service.SceneAggregator
	assembler  service.SceneAssembler
	clients    service.ClientProvider
	llmLogs    *ai.RequestLogBuffer
	logger     *zap.Logger
}

// Deps — зависимости HTTP слоя.
type Deps struct {
	Projects   repository.ProjectRepository
	Assets     repository.AssetRepository
	Variants   repository.VariantRepository
	Scenes     repository.SceneRepository
	Settings   repository.SettingsRepository
	Aggregator service.SceneAggregator
	Assembler  service.SceneAssembler
	Clients    service.ClientProvider
	LLMLogs    *ai.RequestLogBuffer
}

// NewHandler создает новый Handler.
func NewHandler(deps Deps, logger *zap.Logger) *Handler {
	return &Handler{
		projects:   deps.Projects,
		assets:     deps.Assets,
		variants:   deps.Variants,
		scenes:     deps.Scenes,
		settings:   deps.Settings,
		aggregator: deps.Aggregator,
		assembler:  deps.Assembler,
		clients:    deps.Clients,
		llmLogs:    deps.LLMLogs,
		logger:     logger.Named("Handler"),
	}
}

// RegisterRoutes регистрирует маршруты API.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	projectsGroup := api.Group("/projects")
	{
		projectsGroup.GET("", h.listProjects)
		projectsGroup.POST("", h.createProject)
		projectsGroup.GET("/:id", h.getProject)
		projectsGroup.PUT("/:id", h.updateProject)
		projectsGroup.DELETE("/:id", h.deleteProject)
	}

	assetsGroup := api.Group("/assets")
	{
		assetsGroup.GET("", h.listAssets)
		assetsGroup.POST("", h.createAsset)
		assetsGroup.GET("/:id", h.getAsset)
		assetsGroup.PUT("/:id", h.updateAsset)
		assetsGroup.DELETE("/:id", h.deleteAsset)
	}

	variantsGroup := api.Group("/variants")
	{
		variantsGroup.POST("", h.createVariant)
		variantsGroup.GET("/:id", h.getVariant)
		variantsGroup.PUT("/:id", h.updateVariant)
		variantsGroup.DELETE("/:id", h.deleteVariant)
	}

	scenesGroup := api.Group("/scenes")
	{
		scenesGroup.GET("", h.listScenes)
		scenesGroup.POST("", h.createScene)
		scenesGroup.GET("/:id", h.getScene)
		scenesGroup.PUT("/:id", h.updateScene)
		scenesGroup.DELETE("/:id", h.deleteScene)
		scenesGroup.POST("/:id/generate", h.generateScenePrompt)
	}

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", h.getSettings)
		settingsGroup.PUT("", h.updateSettings)
	}

	llmGroup := api.Group("/llm")
	{
		llmGroup.GET("/logs", h.getLLMLogs)
		llmGroup.POST("/test", h.testLLMConnection)
		llmGroup.POST("/enrich", h.enrichAsset)
		llmGroup.POST("/enrich-variant", h.enrichVariant)
	}
}
