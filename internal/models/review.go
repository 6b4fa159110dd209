package models

import "time"

// MaxReviewLength bounds review content, in characters.
const MaxReviewLength = 1000

// Review is an append-only review entry on a project.
// No update or delete operation exists for reviews.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"index;not null" json:"project_id"`
	Project   *Project  `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
