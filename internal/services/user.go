package services

import (
	"errors"

	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/pkg/response"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	follows  *FollowService
	projects *ProjectService
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		db:       db,
		follows:  NewFollowService(db),
		projects: NewProjectService(db),
	}
}

// Profile is the public shape of a user on their dashboard.
type Profile struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Photo     string `json:"photo"`
	Followers int64  `json:"followers"`
	Following int64  `json:"following"`
}

type Dashboard struct {
	Profile     Profile          `json:"profile"`
	Projects    []models.Project `json:"projects"`
	IsFollowing bool             `json:"is_following"`
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// Dashboard returns a user's profile, their projects, and whether the
// actor follows them. Private projects appear only on the owner's own
// dashboard.
func (s *UserService) Dashboard(actorID uint, username string) (*Dashboard, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	followers, following, err := s.follows.Counts(user.ID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.ListByOwner(actorID, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowing, err := s.follows.IsFollowing(actorID, user.ID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Profile: Profile{
			ID:        user.ID,
			Username:  user.Username,
			Photo:     user.Photo,
			Followers: followers,
			Following: following,
		},
		Projects:    projects,
		IsFollowing: isFollowing,
	}, nil
}

// UpdatePhoto stores the object key of a user's new profile photo.
func (s *UserService) UpdatePhoto(userID uint, objectKey string) error {
	result := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("photo", objectKey)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return response.NewNotFound("user not found")
	}
	return nil
}
