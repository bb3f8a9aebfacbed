package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/services"
	"github.com/gezerm85/GymPara-Backend/utils"
)

type CarouselController struct {
	Carousel  *services.CarouselService
	UploadDir string
}

func NewCarouselController(carousel *services.CarouselService, uploadDir string) *CarouselController {
	return &CarouselController{Carousel: carousel, UploadDir: uploadDir}
}

// GET /api/carousel
func (cc *CarouselController) GetCarousel(c *gin.Context) {
	items, err := cc.Carousel.ListCarousel()
	if err != nil {
		logrus.WithError(err).Error("list carousel failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/carousel — multipart form, the image is required.
func (cc *CarouselController) CreateCarousel(c *gin.Context) {
	orderStr := c.PostForm("order_number")
	link := c.PostForm("link")

	orderNumber, err := strconv.Atoi(orderStr)
	if orderStr == "" || err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all fields."})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all fields."})
		return
	}

	imagePath, err := utils.SaveUploadedImage(c, file, cc.UploadDir, "carousel")
	if err != nil {
		logrus.WithError(err).Error("carousel image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "File could not be saved."})
		return
	}

	item, err := cc.Carousel.CreateCarousel(imagePath, orderNumber, link)
	if err != nil {
		logrus.WithError(err).Error("create carousel failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Carousel created successfully.",
		"carousel": item,
	})
}

type CarouselUpdateInput struct {
	ImgURL      string `json:"img_url" binding:"required"`
	OrderNumber int    `json:"order_number" binding:"required"`
	Link        string `json:"link"`
}

// PUT /api/carousel/:id
func (cc *CarouselController) UpdateCarousel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id."})
		return
	}

	var input CarouselUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all fields."})
		return
	}

	item, err := cc.Carousel.UpdateCarousel(uint(id), input.ImgURL, input.OrderNumber, input.Link)
	if err != nil {
		if errors.Is(err, services.ErrCarouselNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Carousel not found."})
			return
		}
		logrus.WithError(err).Error("update carousel failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Carousel updated.",
		"carousel": item,
	})
}

// DELETE /api/carousel/:id
func (cc *CarouselController) DeleteCarousel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id."})
		return
	}

	item, err := cc.Carousel.DeleteCarousel(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCarouselNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Carousel not found."})
			return
		}
		logrus.WithError(err).Error("delete carousel failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Carousel deleted successfully.",
		"carousel": item,
	})
}

// GET /api/sliders
func (cc *CarouselController) GetSliders(c *gin.Context) {
	sliders, err := cc.Carousel.ListActiveSliders()
	if err != nil {
		logrus.WithError(err).Error("list sliders failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
		return
	}

	out := make([]gin.H, 0, len(sliders))
	for _, s := range sliders {
		out = append(out, gin.H{"image_url": s.ImageURL})
	}
	c.JSON(http.StatusOK, out)
}
