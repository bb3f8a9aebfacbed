package models

import (
	"gorm.io/gorm"
)

type ExerciseCategory struct {
	gorm.Model
	Name string `gorm:"not null"`
	Icon string `gorm:"not null"`
}

type Exercise struct {
	gorm.Model
	Name        string `gorm:"not null"`
	CategoryID  uint   `gorm:"index;not null"`
	Duration    int    // minutes
	Calories    int
	Difficulty  string // "easy"|"medium"|"hard"
	Image       string
	Description string
}
