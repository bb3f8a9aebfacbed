package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/services"
	"github.com/gezerm85/GymPara-Backend/utils"
)

type RewardController struct {
	Rewards   *services.RewardService
	UploadDir string
}

func NewRewardController(rewards *services.RewardService, uploadDir string) *RewardController {
	return &RewardController{Rewards: rewards, UploadDir: uploadDir}
}

// GET /api/rewards
func (rc *RewardController) GetRewards(c *gin.Context) {
	rewards, err := rc.Rewards.ListRewards()
	if err != nil {
		logrus.WithError(err).Error("list rewards failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, rewards)
}

// POST /api/rewards — multipart form with an optional image.
func (rc *RewardController) CreateReward(c *gin.Context) {
	title := c.PostForm("title")
	priceStr := c.PostForm("price")
	model := c.PostForm("model")
	description := c.PostForm("description")

	price, err := strconv.Atoi(priceStr)
	if title == "" || priceStr == "" || model == "" || description == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in the required fields."})
		return
	}

	var imagePath string
	if file, err := c.FormFile("image"); err == nil {
		imagePath, err = utils.SaveUploadedImage(c, file, rc.UploadDir, "rewards")
		if err != nil {
			logrus.WithError(err).Error("reward image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "File could not be saved."})
			return
		}
	}

	reward, err := rc.Rewards.CreateReward(title, price, model, description, imagePath)
	if err != nil {
		logrus.WithError(err).Error("create reward failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reward created successfully.",
		"reward":  reward,
	})
}
