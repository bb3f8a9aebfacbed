package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/services"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// GET /api/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := pc.Profiles.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found."})
			return
		}
		logrus.WithError(err).Error("get profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gender":         profile.Gender,
		"birth_year":     profile.BirthYear,
		"activity_level": profile.ActivityLevel,
		"motivation":     profile.Motivation,
		"weight":         profile.Weight,
		"height":         profile.Height,
		"workout_days":   profile.WorkoutDays,
	})
}

// POST /api/profile
func (pc *ProfileController) CreateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input."})
		return
	}

	userID := c.GetUint("userID")
	if err := pc.Profiles.CreateProfile(userID, input); err != nil {
		logrus.WithError(err).Error("create profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Profile created successfully."})
}

// PUT /api/profile
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input."})
		return
	}

	userID := c.GetUint("userID")
	if err := pc.Profiles.UpdateProfile(userID, input); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found."})
			return
		}
		logrus.WithError(err).Error("update profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated."})
}
