package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginprometheus "github.com/zsais/go-gin-prometheus"

	"continuum-server/internal/ai"
	"continuum-server/internal/config"
	"continuum-server/internal/handler"
	"continuum-server/internal/middleware"
	"continuum-server/internal/repository"
	"continuum-server/internal/service"
	"continuum-server/migrations"
	"continuum-server/pkg/database"
	"continuum-server/pkg/logger"
	"continuum-server/pkg/migration"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))

	// --- Database ---
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pgPool, err := database.NewPgxPool(ctx, database.Config{
		DSN:      cfg.GetDSN(),
		MaxConns: cfg.DBMaxConns,
	}, log)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()
	zap.L().Info("Connected to PostgreSQL")

	// --- Migrations ---
	migrator := migration.NewMigrator(migration.Config{
		MigrationsPath: ".",
		MigrationsFS:   migrations.FS,
	}, pgPool)
	if err := migrator.Up(ctx); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}
	if version, dirty, err := migrator.Version(ctx); err == nil {
		zap.L().Info("Database schema ready", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}

	// --- Dependency Injection ---
	projectRepo := repository.NewPgProjectRepository(pgPool, log)
	assetRepo := repository.NewPgAssetRepository(pgPool, log)
	variantRepo := repository.NewPgVariantRepository(pgPool, log)
	sceneRepo := repository.NewPgSceneRepository(pgPool, log)
	settingsRepo := repository.NewPgSettingsRepository(pgPool, log)

	llmLogs := ai.NewRequestLogBuffer(ai.DefaultRequestLogCapacity)
	clientProvider := service.NewSettingsClientProvider(settingsRepo, llmLogs, log)

	resolver := service.NewResolver(assetRepo, variantRepo, log)
	aggregator := service.NewAggregator(resolver, assetRepo, log)
	assembler := service.NewAssembler(clientProvider, settingsRepo, log)

	apiHandler := handler.NewHandler(handler.Deps{
		Projects:   projectRepo,
		Assets:     assetRepo,
		Variants:   variantRepo,
		Scenes:     sceneRepo,
		Settings:   settingsRepo,
		Aggregator: aggregator,
		Assembler:  assembler,
		Clients:    clientProvider,
		LLMLogs:    llmLogs,
	}, log)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.GinZapLogger(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if allowedOrigins := cfg.GetAllowedOrigins(); len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	apiHandler.RegisterRoutes(router)

	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // генерация через LLM может быть долгой
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
