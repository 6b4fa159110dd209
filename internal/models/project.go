package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a student project post.
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OwnerID     uint           `gorm:"index;not null" json:"owner_id"`
	Owner       *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Overview    string         `gorm:"size:100" json:"overview"`
	Description string         `gorm:"type:text" json:"description"`
	VideoURL    string         `gorm:"size:500" json:"video_url"`
	GithubURL   string         `gorm:"size:500" json:"github_url"`
	Image       string         `gorm:"size:500" json:"image"` // opaque object-store key
	Objectives  string         `gorm:"type:text" json:"objectives"`
	KeyLearning string         `gorm:"type:text" json:"key_learning"`
	IsPublic    bool           `gorm:"default:true" json:"is_public"`

	Technologies []Technology `gorm:"many2many:project_technologies" json:"technologies,omitempty"`

	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }

// ProjectStar is the star relation between a user and a project.
// Membership, not multiset: the composite unique index keeps it a set.
type ProjectStar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"uniqueIndex:idx_star_pair;not null" json:"project_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_star_pair;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProjectStar) TableName() string { return "project_stars" }

// ProjectView records that a user opened a project's detail view.
// The owner is never recorded; repeated views never double-count.
type ProjectView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"uniqueIndex:idx_view_pair;not null" json:"project_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_view_pair;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ProjectView) TableName() string { return "project_views" }
