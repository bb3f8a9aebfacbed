package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/services"
	"github.com/gezerm85/GymPara-Backend/utils"
)

type UserController struct {
	Users     *services.UserService
	UploadDir string
}

func NewUserController(users *services.UserService, uploadDir string) *UserController {
	return &UserController{Users: users, UploadDir: uploadDir}
}

// GET /api/users/me
func (uc *UserController) GetMe(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := uc.Users.GetFullProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		logrus.WithError(err).Error("full profile failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /api/users/me/avatar
func (uc *UserController) UploadProfileImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required."})
		return
	}

	url, err := utils.SaveUploadedImage(c, file, uc.UploadDir, "profile_images")
	if err != nil {
		logrus.WithError(err).Error("avatar upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "File could not be saved."})
		return
	}

	userID := c.GetUint("userID")
	if err := uc.Users.SetProfileImage(userID, url); err != nil {
		logrus.WithError(err).Error("avatar update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile image uploaded successfully.",
		"url":     url,
	})
}

type PointInput struct {
	Point *int `json:"point" binding:"required"`
}

// PUT /api/users/me/point
func (uc *UserController) UpdatePoint(c *gin.Context) {
	var input PointInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid number (point)."})
		return
	}

	userID := c.GetUint("userID")
	user, err := uc.Users.UpdatePoint(userID, *input.Point)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		logrus.WithError(err).Error("point update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Points updated.",
		"user":    gin.H{"id": user.ID, "point": user.Point},
	})
}

// GET /api/users/leaderboard
func (uc *UserController) GetLeaderboard(c *gin.Context) {
	rows, err := uc.Users.Leaderboard()
	if err != nil {
		logrus.WithError(err).Error("leaderboard failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, rows)
}
