package repository

import (
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) ListAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Where("is_available = ?", true).Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *models.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *models.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&models.MenuItem{}, id).Error
}
