package services

import (
	"github.com/devfolio/devfolio/internal/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// DashboardStats holds site-wide counters for the stats endpoint.
type DashboardStats struct {
	Users          int64 `json:"users"`
	Projects       int64 `json:"projects"`
	PublicProjects int64 `json:"public_projects"`
	Reviews        int64 `json:"reviews"`
	Stars          int64 `json:"stars"`
}

func (s *StatsService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Project{}).Count(&stats.Projects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Project{}).
		Where("is_public = ?", true).
		Count(&stats.PublicProjects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Review{}).Count(&stats.Reviews).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ProjectStar{}).Count(&stats.Stars).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
