// services/workout_service.go
package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

type WorkoutService struct {
	db *gorm.DB
}

func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{db: db}
}

type BodyPartRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type SupplementDose struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Only the two known supplement keys are decoded; anything else in the
// payload is dropped by the JSON decoder and never reaches the database.
type SupplementsRequest struct {
	Creatine *SupplementDose `json:"creatine"`
	Protein  *SupplementDose `json:"protein"`
}

type WorkoutRequest struct {
	ActivityID    string              `json:"activity_id" binding:"required"`
	ActivityTitle string              `json:"activity_title" binding:"required"`
	Duration      float64             `json:"duration" binding:"required"`
	Unit          string              `json:"unit" binding:"required"`
	Rating        *int                `json:"rating"`
	Note          string              `json:"note"`
	BodyParts     []BodyPartRequest   `json:"body_parts"`
	Supplements   *SupplementsRequest `json:"supplements"`
	CreatedAt     *time.Time          `json:"created_at"`
}

// LogWorkout persists one workout plus its body-part tags and supplement
// rows as a single transaction. Either every row commits or none do; a
// reader can never observe a workout without its children.
func (s *WorkoutService) LogWorkout(userID uint, req WorkoutRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		log := &models.WorkoutLog{
			UserID:        userID,
			ActivityID:    req.ActivityID,
			ActivityTitle: req.ActivityTitle,
			Duration:      req.Duration,
			Unit:          req.Unit,
			Rating:        req.Rating,
			Note:          req.Note,
		}
		if req.CreatedAt != nil {
			log.CreatedAt = *req.CreatedAt
		}
		if err := tx.Create(log).Error; err != nil {
			return fmt.Errorf("insert workout log: %w", err)
		}

		// zero body parts is fine, the loop just doesn't run
		for _, part := range req.BodyParts {
			bp := &models.WorkoutBodyPart{
				WorkoutLogID: log.ID,
				BodyPartID:   part.ID,
				Name:         part.Name,
				Icon:         part.Icon,
				Color:        part.Color,
			}
			if err := tx.Create(bp).Error; err != nil {
				return fmt.Errorf("insert body part: %w", err)
			}
		}

		if req.Supplements != nil {
			if err := s.insertSupplement(tx, log.ID, models.SupplementCreatine, req.Supplements.Creatine); err != nil {
				return err
			}
			if err := s.insertSupplement(tx, log.ID, models.SupplementProtein, req.Supplements.Protein); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *WorkoutService) insertSupplement(tx *gorm.DB, workoutLogID uint, typ string, dose *SupplementDose) error {
	if dose == nil {
		return nil
	}
	row := &models.WorkoutSupplement{
		WorkoutLogID: workoutLogID,
		Type:         typ,
		Amount:       dose.Amount,
		Unit:         dose.Unit,
	}
	if err := tx.Create(row).Error; err != nil {
		return fmt.Errorf("insert %s supplement: %w", typ, err)
	}
	return nil
}

type WorkoutView struct {
	ID            uint      `json:"id"`
	ActivityID    string    `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	Duration      float64   `json:"duration"`
	Unit          string    `json:"unit"`
	Rating        *int      `json:"rating"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
	BodyParts     []string  `json:"body_parts"`
	Supplements   []string  `json:"supplements"`
}

// ListWorkouts returns the caller's workouts newest first, with body-part
// names and supplement types collapsed to distinct values. Slices are
// always non-nil so the JSON shows [] instead of null.
func (s *WorkoutService) ListWorkouts(userID uint) ([]WorkoutView, error) {
	var logs []models.WorkoutLog
	err := s.db.
		Preload("BodyParts").
		Preload("Supplements").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	views := make([]WorkoutView, 0, len(logs))
	for _, l := range logs {
		v := WorkoutView{
			ID:            l.ID,
			ActivityID:    l.ActivityID,
			ActivityTitle: l.ActivityTitle,
			Duration:      l.Duration,
			Unit:          l.Unit,
			Rating:        l.Rating,
			Note:          l.Note,
			CreatedAt:     l.CreatedAt,
			BodyParts:     make([]string, 0, len(l.BodyParts)),
			Supplements:   make([]string, 0, len(l.Supplements)),
		}

		seen := make(map[string]bool, len(l.BodyParts))
		for _, bp := range l.BodyParts {
			if !seen[bp.Name] {
				seen[bp.Name] = true
				v.BodyParts = append(v.BodyParts, bp.Name)
			}
		}

		seenSup := make(map[string]bool, len(l.Supplements))
		for _, sup := range l.Supplements {
			if !seenSup[sup.Type] {
				seenSup[sup.Type] = true
				v.Supplements = append(v.Supplements, sup.Type)
			}
		}

		views = append(views, v)
	}
	return views, nil
}
