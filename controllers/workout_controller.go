package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/services"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

// POST /api/workouts
//
// Malformed or incomplete payloads are rejected before any transaction is
// opened; storage failures never leave a partially written workout behind.
func (wc *WorkoutController) LogWorkout(c *gin.Context) {
	var body struct {
		ExerciseData services.WorkoutRequest `json:"exercise_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in the required fields."})
		return
	}

	userID := c.GetUint("userID")
	if err := wc.Workouts.LogWorkout(userID, body.ExerciseData); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("workout write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout logged successfully."})
}

// GET /api/workouts
func (wc *WorkoutController) GetWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	views, err := wc.Workouts.ListWorkouts(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("workout history failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, views)
}
