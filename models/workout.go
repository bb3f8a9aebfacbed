package models

import (
	"gorm.io/gorm"
)

// One WorkoutLog per logged session. Append-only: no update/delete path.
type WorkoutLog struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"` // FK → users.id
	ActivityID    string `gorm:"type:varchar(255);not null"`
	ActivityTitle string `gorm:"not null"` // denormalized display string
	Duration      float64
	Unit          string // e.g. "minutes"
	Rating        *int
	Note          string

	BodyParts   []WorkoutBodyPart   `gorm:"foreignKey:WorkoutLogID"`
	Supplements []WorkoutSupplement `gorm:"foreignKey:WorkoutLogID"`
}

// Body-region tag attached to a workout. Lives and dies with its parent.
type WorkoutBodyPart struct {
	gorm.Model
	WorkoutLogID uint   `gorm:"index;not null"`
	BodyPartID   string `gorm:"type:varchar(255)"`
	Name         string
	Icon         string
	Color        string
}

const (
	SupplementCreatine = "creatine"
	SupplementProtein  = "protein"
)

// At most one row per supplement type per workout.
type WorkoutSupplement struct {
	gorm.Model
	WorkoutLogID uint    `gorm:"not null;uniqueIndex:idx_workout_supplement_type"`
	Type         string  `gorm:"not null;uniqueIndex:idx_workout_supplement_type"` // creatine|protein
	Amount       float64
	Unit         string // e.g. "g", "scoop"
}
