package services

import (
	"errors"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/response"
	"gorm.io/gorm"
)

// DefaultFeedPageSize is the fixed feed page size.
const DefaultFeedPageSize = 10

type ProjectService struct {
	db         *gorm.DB
	tech       *TechnologyService
	engagement *EngagementService
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		db:         db,
		tech:       NewTechnologyService(db),
		engagement: NewEngagementService(db),
	}
}

type FeedRequest struct {
	Page     int `form:"page" binding:"min=0"`
	PageSize int `form:"page_size" binding:"min=0,max=100"`
}

type FeedResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Title        string `json:"title" binding:"required"`
	Overview     string `json:"overview" binding:"max=100"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url" binding:"omitempty,url"`
	GithubURL    string `json:"github_url" binding:"omitempty,url"`
	Image        string `json:"image"`
	Objectives   string `json:"objectives"`
	KeyLearning  string `json:"key_learning"`
	Technologies string `json:"technologies"` // comma-separated names
	IsPublic     *bool  `json:"is_public"`
}

type UpdateProjectRequest struct {
	Title        string  `json:"title"`
	Overview     string  `json:"overview" binding:"max=100"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"video_url"`
	GithubURL    *string `json:"github_url"`
	Image        *string `json:"image"`
	Objectives   *string `json:"objectives"`
	KeyLearning  *string `json:"key_learning"`
	Technologies *string `json:"technologies"`
	IsPublic     *bool   `json:"is_public"`
}

type VisibilityRequest struct {
	IsPublic *bool `json:"is_public" binding:"required"`
}

type ProjectDetail struct {
	Project     *models.Project `json:"project"`
	Reviews     []models.Review `json:"reviews"`
	StarCount   int64           `json:"star_count"`
	ViewerCount int64           `json:"viewer_count"`
	Starred     bool            `json:"starred"`
}

// ListFeed returns the paginated public feed, newest first. When the actor
// is authenticated (actorID > 0), their own projects are excluded; an
// unauthenticated actor sees all public projects.
func (s *ProjectService) ListFeed(actorID uint, req *FeedRequest) (*FeedResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = DefaultFeedPageSize
	}

	query := s.db.Model(&models.Project{}).Where("is_public = ?", true)
	if actorID > 0 {
		query = query.Where("owner_id <> ?", actorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var projects []models.Project
	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Preload("Owner").
		Preload("Technologies").
		Offset(offset).Limit(req.PageSize).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return &FeedResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project without any visibility check. Callers gate
// access with CanView/CanMutate.
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("Owner").Preload("Technologies").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Create creates a project owned by the actor, with its technology set,
// in one transaction.
func (s *ProjectService) Create(actorID uint, req *CreateProjectRequest) (*models.Project, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	project := models.Project{
		OwnerID:     actorID,
		Title:       req.Title,
		Overview:    req.Overview,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		GithubURL:   req.GithubURL,
		Image:       req.Image,
		Objectives:  req.Objectives,
		KeyLearning: req.KeyLearning,
		IsPublic:    isPublic,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return s.tech.SetTechnologies(tx, &project, req.Technologies)
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Update updates a project. Fails with Forbidden unless the actor owns it.
// A non-nil Technologies replaces the full technology set, no diffing.
func (s *ProjectService) Update(actorID, id uint, req *UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actorID, project) {
		return nil, response.NewForbidden("only the owner can update this project")
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Overview != "" {
		updates["overview"] = req.Overview
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Objectives != nil {
		updates["objectives"] = *req.Objectives
	}
	if req.KeyLearning != nil {
		updates["key_learning"] = *req.KeyLearning
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(project).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Technologies != nil {
			return s.tech.SetTechnologies(tx, project, *req.Technologies)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Delete deletes a project and its stars, views, reviews, and technology
// associations. Technology rows themselves persist; they may be referenced
// by other projects.
func (s *ProjectService) Delete(actorID, id uint) error {
	project, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if !CanMutate(actorID, project) {
		return response.NewForbidden("only the owner can delete this project")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectStar{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(project).Association("Technologies").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// Detail returns the project detail view for the actor: the project with
// its reviews (newest first) and star/viewer counts. Opening the detail
// records the actor as a viewer (idempotent, owner excluded).
func (s *ProjectService) Detail(actorID, id uint) (*ProjectDetail, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanView(actorID, project) {
		return nil, response.NewForbidden("this project is private")
	}

	if err := s.engagement.RecordView(actorID, project); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("project_id = ?", id).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	starCount, err := s.engagement.StarCount(id)
	if err != nil {
		return nil, err
	}
	viewerCount, err := s.engagement.ViewerCount(id)
	if err != nil {
		return nil, err
	}
	starred, err := s.engagement.HasStarred(actorID, id)
	if err != nil {
		return nil, err
	}

	return &ProjectDetail{
		Project:     project,
		Reviews:     reviews,
		StarCount:   starCount,
		ViewerCount: viewerCount,
		Starred:     starred,
	}, nil
}

// SetVisibility sets the is_public flag. Fails with Forbidden unless the
// actor owns the project.
func (s *ProjectService) SetVisibility(actorID, id uint, isPublic bool) (*models.Project, error) {
	project, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(actorID, project) {
		return nil, response.NewForbidden("only the owner can change visibility")
	}

	if err := s.db.Model(project).Update("is_public", isPublic).Error; err != nil {
		return nil, err
	}
	project.IsPublic = isPublic
	return project, nil
}

// ListByOwner returns a user's projects, newest first. Private projects are
// included only when the actor is that user.
func (s *ProjectService) ListByOwner(actorID, ownerID uint) ([]models.Project, error) {
	query := s.db.Preload("Technologies").Where("owner_id = ?", ownerID)
	if actorID != ownerID {
		query = query.Where("is_public = ?", true)
	}

	var projects []models.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
