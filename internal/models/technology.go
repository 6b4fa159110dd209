package models

// Technology is a named tag shared across projects.
// Get-or-create by exact name; rows persist after the last project
// referencing them is deleted.
type Technology struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:200;not null" json:"name"`
}

func (Technology) TableName() string { return "technologies" }
