package handlers

import (
	"github.com/devfolio/devfolio/internal/middleware"
	"github.com/devfolio/devfolio/internal/services"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{
		reviewService: services.NewReviewService(db),
	}
}

// Add appends a review to a project
// POST /api/projects/:id/reviews
func (h *ReviewHandler) Add(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req services.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Add(middleware.GetUserID(c), projectID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, review)
}
