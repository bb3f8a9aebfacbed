package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Name             string `gorm:"not null"`
    Email            string `gorm:"uniqueIndex;not null"`
    Password         string `gorm:"not null"`
    Point            int    `gorm:"default:0"`
    WelcomeCompleted bool   `gorm:"default:false"`
    ProfileImageURL  string
}
