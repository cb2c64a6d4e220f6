package models

import (
	"time"
)

// Game is a single entry in the collection. Deletes are hard deletes,
// so there is no soft-delete column.
type Game struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	ReleaseDate *time.Time `json:"releaseDate" gorm:"type:date"`
	System      string     `json:"system" gorm:"not null"`
	Owned       bool       `json:"owned" gorm:"not null"`
	HasBackup   bool       `json:"hasBackup" gorm:"not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
