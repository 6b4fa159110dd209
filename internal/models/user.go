package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered portfolio user.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash
	Email     string         `gorm:"size:255" json:"email"`
	Photo     string         `gorm:"size:500" json:"photo"`           // opaque object-store key
	Role      string         `gorm:"size:50;default:user" json:"role"` // admin, user
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Follow is the asymmetric follow relation: follower follows followee.
// The composite unique index makes repeated follow inserts impossible,
// and FollowerID != FolloweeID is enforced at the service boundary.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"uniqueIndex:idx_follow_pair;not null" json:"follower_id"`
	FolloweeID uint      `gorm:"uniqueIndex:idx_follow_pair;not null" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }
