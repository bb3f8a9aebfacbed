package models

import (
	"gorm.io/gorm"
)

// Onboarding answers collected on first launch ("welcome" flow).
type UserProfile struct {
	gorm.Model
	UserID        uint   `gorm:"uniqueIndex;not null"` // FK → users.id
	Gender        string
	BirthYear     int
	ActivityLevel string // "sedentary"|"moderate"|"active"|…
	Motivation    string
	Weight        float64 // kg
	Height        float64 // cm
	WorkoutDays   int     // days per week
}
