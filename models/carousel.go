package models

import (
	"gorm.io/gorm"
)

// Promotional banner shown on the home screen, ordered by OrderNumber.
type CarouselItem struct {
	gorm.Model
	ImgURL      string `gorm:"not null"`
	OrderNumber int    `gorm:"index;not null"`
	Link        string
}

type Slider struct {
	gorm.Model
	ImageURL string `gorm:"not null"`
	IsActive bool   `gorm:"default:true"`
}
