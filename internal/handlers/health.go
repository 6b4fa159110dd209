package handlers

import (
	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler provides the health check endpoint.
type HealthHandler struct {
	storage *services.StorageService
}

func NewHealthHandler(storage *services.StorageService) *HealthHandler {
	return &HealthHandler{storage: storage}
}

// CheckHealth returns the health status of all subsystems.
// GET /health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	storageStatus := "disabled"
	if h.storage != nil && h.storage.Enabled() {
		storageStatus = "ok"
	}

	c.JSON(200, gin.H{
		"status":  overall,
		"service": "devfolio",
		"components": gin.H{
			"database": dbStatus,
			"storage":  storageStatus,
		},
	})
}
