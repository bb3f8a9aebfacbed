package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/services"
)

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func NewExerciseController(exercises *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: exercises}
}

// GET /api/exercises/categories
func (ec *ExerciseController) GetCategories(c *gin.Context) {
	categories, err := ec.Exercises.ListCategories()
	if err != nil {
		logrus.WithError(err).Error("list categories failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /api/exercises
func (ec *ExerciseController) GetExercises(c *gin.Context) {
	exercises, err := ec.Exercises.ListExercises()
	if err != nil {
		logrus.WithError(err).Error("list exercises failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, exercises)
}

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon" binding:"required"`
}

// POST /api/exercises/categories
func (ec *ExerciseController) CreateCategory(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all fields."})
		return
	}

	category, err := ec.Exercises.CreateCategory(input.Name, input.Icon)
	if err != nil {
		logrus.WithError(err).Error("create category failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully.",
		"category": category,
	})
}

// POST /api/exercises
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	var input services.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in the required fields."})
		return
	}

	exercise, err := ec.Exercises.CreateExercise(input)
	if err != nil {
		logrus.WithError(err).Error("create exercise failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Exercise created successfully.",
		"exercise": exercise,
	})
}
