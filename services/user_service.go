package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewUserService(db *gorm.DB, hub *RealtimeHub) *UserService {
	return &UserService{db: db, hub: hub}
}

// Users joined with their onboarding profile (profile columns are zero
// values until the welcome flow is completed).
type FullUserProfile struct {
	UserID           uint    `json:"user_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Point            int     `json:"point"`
	WelcomeCompleted bool    `json:"welcome_completed"`
	ProfileImageURL  string  `json:"profile_image_url"`
	Gender           string  `json:"gender"`
	BirthYear        int     `json:"birth_year"`
	ActivityLevel    string  `json:"activity_level"`
	Motivation       string  `json:"motivation"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	WorkoutDays      int     `json:"workout_days"`
}

func (s *UserService) GetFullProfile(userID uint) (*FullUserProfile, error) {
	var row FullUserProfile
	err := s.db.
		Table("users").
		Select(`users.id AS user_id, users.name, users.email, users.point,
			users.welcome_completed, users.profile_image_url,
			user_profiles.gender, user_profiles.birth_year, user_profiles.activity_level,
			user_profiles.motivation, user_profiles.weight, user_profiles.height,
			user_profiles.workout_days`).
		Joins("LEFT JOIN user_profiles ON users.id = user_profiles.user_id").
		Where("users.id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("load full profile: %w", err)
	}
	if row.UserID == 0 {
		return nil, ErrUserNotFound
	}
	return &row, nil
}

func (s *UserService) SetProfileImage(userID uint, imageURL string) error {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image_url", imageURL)
	if res.Error != nil {
		return fmt.Errorf("update profile image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePoint sets the user's point total and pushes the new value to any
// websocket sessions the user has open.
func (s *UserService) UpdatePoint(userID uint, point int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.Point = point
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("update point: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{
			"kind":  "points.updated",
			"point": user.Point,
		})
	}
	return &user, nil
}

type LeaderboardEntry struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Point           int     `json:"point"`
	ProfileImageURL string  `json:"profile_image_url"`
	Gender          string  `json:"gender"`
	BirthYear       int     `json:"birth_year"`
	ActivityLevel   string  `json:"activity_level"`
	Motivation      string  `json:"motivation"`
	Weight          float64 `json:"weight"`
	Height          float64 `json:"height"`
	WorkoutDays     int     `json:"workout_days"`
}

// Leaderboard ranks welcome-completed users by points, name as tiebreak.
func (s *UserService) Leaderboard() ([]LeaderboardEntry, error) {
	var rows []LeaderboardEntry
	err := s.db.
		Table("users").
		Select(`users.id, users.name, users.point, users.profile_image_url,
			user_profiles.gender, user_profiles.birth_year, user_profiles.activity_level,
			user_profiles.motivation, user_profiles.weight, user_profiles.height,
			user_profiles.workout_days`).
		Joins("LEFT JOIN user_profiles ON users.id = user_profiles.user_id").
		Where("users.welcome_completed = ?", true).
		Order("users.point DESC, users.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return rows, nil
}
