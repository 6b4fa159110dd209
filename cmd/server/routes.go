package main

import (
	"github.com/devfolio/devfolio/internal/handlers"
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	healthHandler := handlers.NewHealthHandler(svc.storage)
	r.GET("/health", healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
		}

		// Public feed: optional auth so an authenticated caller's own
		// projects are excluded
		projectHandler := handlers.NewProjectHandler(models.GetDB())
		api.GET("/projects", middleware.OptionalAuth(), projectHandler.ListFeed)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired(), middleware.AuditLog())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Dashboard stats
			dashboardHandler := handlers.NewDashboardHandler(models.GetDB())
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Projects
			protected.GET("/projects/:id", projectHandler.Detail)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)
			protected.DELETE("/projects/:id", projectHandler.Delete)
			protected.POST("/projects/:id/star", projectHandler.ToggleStar)
			protected.PUT("/projects/:id/visibility", projectHandler.SetVisibility)

			// Reviews
			reviewHandler := handlers.NewReviewHandler(models.GetDB())
			protected.POST("/projects/:id/reviews", reviewHandler.Add)

			// Users
			userHandler := handlers.NewUserHandler(models.GetDB(), svc.storage)
			protected.GET("/dashboard/:username", userHandler.Dashboard)
			protected.POST("/users/:id/follow", userHandler.ToggleFollow)
			protected.POST("/users/photo", userHandler.UpdatePhoto)

			// Image uploads
			uploadHandler := handlers.NewUploadHandler(svc.storage)
			protected.POST("/uploads", uploadHandler.UploadImage)
		}

		// Admin only routes
		admin := api.Group("")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			systemLogHandler := handlers.NewSystemLogHandler(models.GetDB())
			admin.GET("/system-logs", systemLogHandler.List)
			admin.GET("/system-logs/retention", systemLogHandler.GetRetentionDays)
			admin.PUT("/system-logs/retention", systemLogHandler.SetRetentionDays)
			admin.POST("/system-logs/cleanup", systemLogHandler.Cleanup)
		}
	}
}
