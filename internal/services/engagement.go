package services

import (
	"errors"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementService implements the star toggle and viewer tracking.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

type StarToggleResult struct {
	Starred bool  `json:"starred"`
	Count   int64 `json:"count"`
}

// ToggleStar stars the project if the actor has not starred it, and
// unstars otherwise. Owners may star their own projects. The toggle is a
// conditional delete-then-insert inside a transaction, so the reported
// state and count reflect the true prior membership even under
// concurrent calls.
func (s *EngagementService) ToggleStar(actorID, projectID uint) (*StarToggleResult, error) {
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

	result := &StarToggleResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("project_id = ? AND user_id = ?", projectID, actorID).
			Delete(&models.ProjectStar{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			result.Starred = false
		} else {
			star := models.ProjectStar{ProjectID: projectID, UserID: actorID}
			if err := tx.Create(&star).Error; err != nil {
				return err
			}
			result.Starred = true
		}

		return tx.Model(&models.ProjectStar{}).
			Where("project_id = ?", projectID).
			Count(&result.Count).Error
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RecordView adds the actor to the project's viewer set. The owner is
// never recorded, actors who may not view the project are never recorded,
// and repeated calls are a no-op thanks to ON CONFLICT DO NOTHING on the
// (project_id, user_id) unique index.
func (s *EngagementService) RecordView(actorID uint, project *models.Project) error {
	if actorID == 0 || actorID == project.OwnerID || !CanView(actorID, project) {
		return nil
	}

	view := models.ProjectView{ProjectID: project.ID, UserID: actorID}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&view).Error
}

// StarCount returns the number of stars on a project.
func (s *EngagementService) StarCount(projectID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.ProjectStar{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// ViewerCount returns the number of distinct viewers of a project.
func (s *EngagementService) ViewerCount(projectID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.ProjectView{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// HasStarred reports whether the actor has starred the project.
func (s *EngagementService) HasStarred(actorID, projectID uint) (bool, error) {
	if actorID == 0 {
		return false, nil
	}

	var count int64
	err := s.db.Model(&models.ProjectStar{}).
		Where("project_id = ? AND user_id = ?", projectID, actorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
