package services

import (
	"errors"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/response"
	"gorm.io/gorm"
)

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

type FollowToggleResult struct {
	Message   string `json:"message"`
	Following bool   `json:"following"`
	Followers int64  `json:"followers"`
}

// Toggle follows the target if the actor does not follow it yet, and
// unfollows otherwise. Self-follow is rejected before any mutation.
// The delete-then-insert runs in one transaction; the unique index on
// (follower_id, followee_id) keeps concurrent toggles from double-inserting.
func (s *FollowService) Toggle(actorID, targetID uint) (*FollowToggleResult, error) {
	if actorID == targetID {
		return nil, response.NewBadRequest("cannot follow yourself")
	}

	var target models.User
	if err := s.db.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	result := &FollowToggleResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", actorID, targetID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			result.Following = false
			result.Message = "Unfollowed"
		} else {
			follow := models.Follow{FollowerID: actorID, FolloweeID: targetID}
			if err := tx.Create(&follow).Error; err != nil {
				return err
			}
			result.Following = true
			result.Message = "Followed"
		}

		return tx.Model(&models.Follow{}).
			Where("followee_id = ?", targetID).
			Count(&result.Followers).Error
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// IsFollowing reports whether actor follows target. Pure query, no side effect.
func (s *FollowService) IsFollowing(actorID, targetID uint) (bool, error) {
	if actorID == 0 || actorID == targetID {
		return false, nil
	}

	var count int64
	err := s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", actorID, targetID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Counts returns the follower and following counts for a user.
func (s *FollowService) Counts(userID uint) (followers, following int64, err error) {
	if err = s.db.Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&followers).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&following).Error; err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
