package models

import (
	"gorm.io/gorm"
)

// User holds the account identity plus the body-metrics profile.
// BMI is derived from height/weight and recomputed on every metrics
// update; it is nil until a positive height is known.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`

	Age      int      `json:"age"`
	HeightCm float64  `json:"height_cm"`
	WeightKg float64  `json:"weight_kg"`
	BMI      *float64 `json:"bmi"`
	Goal     string   `gorm:"default:maintain" json:"goal"` // "lose" | "gain" | "maintain"
}
