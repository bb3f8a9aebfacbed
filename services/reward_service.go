package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

func (s *RewardService) ListRewards() ([]models.Reward, error) {
	var rewards []models.Reward
	if err := s.db.Order("id").Find(&rewards).Error; err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	return rewards, nil
}

func (s *RewardService) CreateReward(title string, price int, model, description, img string) (*models.Reward, error) {
	reward := &models.Reward{
		Title:       title,
		Price:       price,
		RewardModel: model,
		Description: description,
		Img:         img,
	}
	if err := s.db.Create(reward).Error; err != nil {
		return nil, fmt.Errorf("create reward: %w", err)
	}
	return reward, nil
}
