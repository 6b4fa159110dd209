package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/response"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type AddReviewRequest struct {
	Content string `json:"content" binding:"required"`
}

// Add appends a review to a project. Content must be 1..1000 characters
// after trimming; reviews are never updated or deleted.
func (s *ReviewService) Add(actorID, projectID uint, content string) (*models.Review, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, response.NewBadRequest("review content is required")
	}
	if utf8.RuneCountInString(content) > models.MaxReviewLength {
		return nil, response.NewBadRequest("review content must not exceed 1000 characters")
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	if !CanView(actorID, &project) {
		return nil, response.NewForbidden("this project is private")
	}

	review := models.Review{
		ProjectID: projectID,
		UserID:    actorID,
		Content:   content,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").First(&review, review.ID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByProject returns a project's reviews, newest first.
func (s *ReviewService) ListByProject(projectID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
