package services

import (
	"strings"

	"github.com/devfolio/devfolio/internal/models"
	"gorm.io/gorm"
)

type TechnologyService struct {
	db *gorm.DB
}

func NewTechnologyService(db *gorm.DB) *TechnologyService {
	return &TechnologyService{db: db}
}

// ParseTechnologyList splits a comma-separated technology list, trims
// whitespace, drops empty entries, and removes duplicates (case-sensitive
// exact match, first occurrence wins).
func ParseTechnologyList(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return names
}

// SetTechnologies replaces the project's technology set with the names in
// the raw comma-separated list, get-or-creating each Technology row by
// exact name. Runs on the given tx so create/update stays one transaction.
// Technology rows are shared across projects and persist on removal.
func (s *TechnologyService) SetTechnologies(tx *gorm.DB, project *models.Project, raw string) error {
	names := ParseTechnologyList(raw)

	techs := make([]models.Technology, 0, len(names))
	for _, name := range names {
		var tech models.Technology
		if err := tx.Where("name = ?", name).
			FirstOrCreate(&tech, models.Technology{Name: name}).Error; err != nil {
			return err
		}
		techs = append(techs, tech)
	}

	if err := tx.Model(project).Association("Technologies").Replace(&techs); err != nil {
		return err
	}
	project.Technologies = techs
	return nil
}
