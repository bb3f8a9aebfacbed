package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

var ErrCarouselNotFound = errors.New("carousel item not found")

type CarouselService struct {
	db *gorm.DB
}

func NewCarouselService(db *gorm.DB) *CarouselService {
	return &CarouselService{db: db}
}

func (s *CarouselService) ListCarousel() ([]models.CarouselItem, error) {
	var items []models.CarouselItem
	if err := s.db.Order("order_number").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list carousel: %w", err)
	}
	return items, nil
}

func (s *CarouselService) CreateCarousel(imgURL string, orderNumber int, link string) (*models.CarouselItem, error) {
	item := &models.CarouselItem{
		ImgURL:      imgURL,
		OrderNumber: orderNumber,
		Link:        link,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("create carousel: %w", err)
	}
	return item, nil
}

func (s *CarouselService) UpdateCarousel(id uint, imgURL string, orderNumber int, link string) (*models.CarouselItem, error) {
	var item models.CarouselItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarouselNotFound
		}
		return nil, fmt.Errorf("find carousel: %w", err)
	}

	item.ImgURL = imgURL
	item.OrderNumber = orderNumber
	item.Link = link
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update carousel: %w", err)
	}
	return &item, nil
}

func (s *CarouselService) DeleteCarousel(id uint) (*models.CarouselItem, error) {
	var item models.CarouselItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarouselNotFound
		}
		return nil, fmt.Errorf("find carousel: %w", err)
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return nil, fmt.Errorf("delete carousel: %w", err)
	}
	return &item, nil
}

// Home-screen sliders; only active ones are served.
func (s *CarouselService) ListActiveSliders() ([]models.Slider, error) {
	var sliders []models.Slider
	if err := s.db.Where("is_active = ?", true).Order("id").Find(&sliders).Error; err != nil {
		return nil, fmt.Errorf("list sliders: %w", err)
	}
	return sliders, nil
}
