package models

import (
	"gorm.io/gorm"
)

// Items in the points store.
type Reward struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Price       int    `gorm:"not null"` // cost in points
	RewardModel string `gorm:"column:model;not null" json:"model"`
	Description string
	Img         string
}
