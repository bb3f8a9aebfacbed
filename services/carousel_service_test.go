package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gezerm85/GymPara-Backend/models"
)

func TestCarouselOrderedByOrderNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarouselService(db)

	_, err := svc.CreateCarousel("/uploads/carousel/b.png", 2, "")
	require.NoError(t, err)
	_, err = svc.CreateCarousel("/uploads/carousel/a.png", 1, "https://example.com")
	require.NoError(t, err)

	items, err := svc.ListCarousel()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].OrderNumber)
	assert.Equal(t, 2, items[1].OrderNumber)
}

func TestUpdateAndDeleteCarousel(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarouselService(db)

	item, err := svc.CreateCarousel("/uploads/carousel/a.png", 1, "")
	require.NoError(t, err)

	updated, err := svc.UpdateCarousel(item.ID, "/uploads/carousel/a2.png", 3, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.OrderNumber)
	assert.Equal(t, "/uploads/carousel/a2.png", updated.ImgURL)

	_, err = svc.DeleteCarousel(item.ID)
	require.NoError(t, err)

	_, err = svc.DeleteCarousel(item.ID)
	assert.ErrorIs(t, err, ErrCarouselNotFound)

	_, err = svc.UpdateCarousel(item.ID, "x", 1, "")
	assert.ErrorIs(t, err, ErrCarouselNotFound)
}

func TestListActiveSlidersFiltersInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCarouselService(db)

	require.NoError(t, db.Create(&models.Slider{ImageURL: "/uploads/sliders/on.png", IsActive: true}).Error)
	inactive := &models.Slider{ImageURL: "/uploads/sliders/off.png", IsActive: false}
	require.NoError(t, db.Create(inactive).Error)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	sliders, err := svc.ListActiveSliders()
	require.NoError(t, err)
	require.Len(t, sliders, 1)
	assert.Equal(t, "/uploads/sliders/on.png", sliders[0].ImageURL)
}
