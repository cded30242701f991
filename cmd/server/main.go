package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tech-oh/internal/auth"
	"tech-oh/internal/config"
	"tech-oh/internal/handler"
	"tech-oh/internal/infrastructure/database"
	"tech-oh/internal/logger"
	"tech-oh/internal/metrics"
	"tech-oh/internal/middleware"
	"tech-oh/internal/repository"
	"tech-oh/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLevel(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfigFrom(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	profileRepo := repository.NewPostgresProfileRepository(pool)

	// Initialize services
	articleService := service.NewArticleService(articleRepo,
		service.WithStoreTimeout(cfg.StoreTimeout),
		service.WithFeedMaxLimit(cfg.FeedMaxLimit),
	)
	profileService := service.NewProfileService(profileRepo, service.WithStoreTimeout(cfg.StoreTimeout))
	dashboardService := service.NewDashboardService(articleService, profileService)
	exportService := service.NewExportService(articleRepo)

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAudience)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiter.Start()
	defer limiter.Stop()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := newRouter(handlers{
		health:  handler.NewHealthHandler(pool),
		feed:    handler.NewFeedHandler(articleService),
		account: handler.NewAccountHandler(profileService, dashboardService),
		profile: handler.NewProfileHandler(profileService),
		article: handler.NewArticleHandler(articleService),
		export:  handler.NewExportHandler(exportService),
	}, verifier, limiter)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server; in-flight exports get the same grace period
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
