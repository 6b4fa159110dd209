package services

import (
	"errors"

	"github.com/devfolio/devfolio/internal/models"
	"gorm.io/gorm"
)

type SystemConfigService struct {
	db *gorm.DB
}

func NewSystemConfigService(db *gorm.DB) *SystemConfigService {
	return &SystemConfigService{db: db}
}

// Get returns the value for a config key, or "" if absent.
func (s *SystemConfigService) Get(key string) string {
	var cfg models.SystemConfig
	if err := s.db.Where("key = ?", key).First(&cfg).Error; err != nil {
		return ""
	}
	return cfg.Value
}

// GetWithDefault returns the value for a config key, or the default if
// absent or empty.
func (s *SystemConfigService) GetWithDefault(key, defaultValue string) string {
	value := s.Get(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Set upserts a config value.
func (s *SystemConfigService) Set(key, value string) error {
	var cfg models.SystemConfig
	err := s.db.Where("key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.SystemConfig{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&cfg).Update("value", value).Error
}
