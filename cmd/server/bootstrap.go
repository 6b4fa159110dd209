package main

import (
	"context"
	"time"

	"github.com/devfolio/devfolio/internal/config"
	"github.com/devfolio/devfolio/internal/handlers"
	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/services"
	"github.com/devfolio/devfolio/internal/utils"
	"github.com/devfolio/devfolio/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	storage     *services.StorageService
	authHandler *handlers.AuthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	// Seed default data
	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	// Initialize system logger
	services.InitSystemLogger(models.GetDB())

	// Start system log cleanup scheduler
	services.StartLogCleanupScheduler(models.GetDB())

	// Initialize object storage for images
	storage, err := services.NewStorageService(&cfg.Storage)
	if err != nil {
		logger.Fatalf("Failed to connect to object storage: %v", err)
	}
	if storage.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := storage.EnsureBucket(ctx); err != nil {
			logger.Warn().Err(err).Msg("Failed to ensure storage bucket")
		}
	}

	// Create default admin user
	authHandler := handlers.NewAuthHandler(models.GetDB(), cfg)
	if err := authHandler.CreateAdminIfNotExists(); err != nil {
		logger.Warn().Err(err).Msg("Failed to create admin user")
	}

	return &appServices{
		storage:     storage,
		authHandler: authHandler,
	}
}

// shutdown gracefully stops all background services.
func (s *appServices) shutdown() {
	services.StopLogCleanupScheduler()
	logger.Info().Msg("All schedulers stopped")
}
