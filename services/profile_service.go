package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type ProfileInput struct {
	Gender        string  `json:"gender"`
	BirthYear     int     `json:"birth_year"`
	ActivityLevel string  `json:"activity_level"`
	Motivation    string  `json:"motivation"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	WorkoutDays   int     `json:"workout_days"`
}

func (s *ProfileService) GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

// CreateProfile inserts the onboarding answers and flips the user's
// welcome_completed flag in one transaction, so a profile can never exist
// with the flag still unset.
func (s *ProfileService) CreateProfile(userID uint, input ProfileInput) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		profile := &models.UserProfile{
			UserID:        userID,
			Gender:        input.Gender,
			BirthYear:     input.BirthYear,
			ActivityLevel: input.ActivityLevel,
			Motivation:    input.Motivation,
			Weight:        input.Weight,
			Height:        input.Height,
			WorkoutDays:   input.WorkoutDays,
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("welcome_completed", true).Error
		if err != nil {
			return fmt.Errorf("mark welcome completed: %w", err)
		}
		return nil
	})
}

func (s *ProfileService) UpdateProfile(userID uint, input ProfileInput) error {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("find profile: %w", err)
	}

	profile.Gender = input.Gender
	profile.BirthYear = input.BirthYear
	profile.ActivityLevel = input.ActivityLevel
	profile.Motivation = input.Motivation
	profile.Weight = input.Weight
	profile.Height = input.Height
	profile.WorkoutDays = input.WorkoutDays

	if err := s.db.Save(&profile).Error; err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
