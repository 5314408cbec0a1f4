package repository

import (
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// Get returns the restaurant profile. The system serves a single
// restaurant, so the first row wins.
func (r *RestaurantRepository) Get() (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.DB.First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
