package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) ListCategories() ([]models.ExerciseCategory, error) {
	var categories []models.ExerciseCategory
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Exercises with their category's display fields flattened in.
type ExerciseView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryID   uint   `json:"category_id"`
	Duration     int    `json:"duration"`
	Calories     int    `json:"calories"`
	Difficulty   string `json:"difficulty"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	CategoryName string `json:"category_name"`
	CategoryIcon string `json:"category_icon"`
}

func (s *ExerciseService) ListExercises() ([]ExerciseView, error) {
	var rows []ExerciseView
	err := s.db.
		Table("exercises").
		Select(`exercises.id, exercises.name, exercises.category_id, exercises.duration,
			exercises.calories, exercises.difficulty, exercises.image, exercises.description,
			exercise_categories.name AS category_name, exercise_categories.icon AS category_icon`).
		Joins("LEFT JOIN exercise_categories ON exercises.category_id = exercise_categories.id").
		Order("exercises.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return rows, nil
}

func (s *ExerciseService) CreateCategory(name, icon string) (*models.ExerciseCategory, error) {
	category := &models.ExerciseCategory{Name: name, Icon: icon}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

type ExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	Calories    int    `json:"calories" binding:"required"`
	Difficulty  string `json:"difficulty" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func (s *ExerciseService) CreateExercise(input ExerciseInput) (*models.Exercise, error) {
	exercise := &models.Exercise{
		Name:        input.Name,
		CategoryID:  input.CategoryID,
		Duration:    input.Duration,
		Calories:    input.Calories,
		Difficulty:  input.Difficulty,
		Image:       input.Image,
		Description: input.Description,
	}
	if err := s.db.Create(exercise).Error; err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}
