package models

import (
	"time"

	"gorm.io/gorm"
)

// CalorieEntry is one immutable row of the per-user calorie log.
// Entries are created (manually or from a photo estimate) and deleted,
// never updated.
type CalorieEntry struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
}
