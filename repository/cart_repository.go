package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the user's cart, creating an empty one on first
// access. A cart is never deleted, only emptied.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetWithItems loads the cart and its lines in insertion order together
// with their menu item references.
func (r *CartRepository) GetWithItems(tx *gorm.DB, userID uint) (*models.Cart, error) {
	cart, err := r.GetOrCreate(tx, userID)
	if err != nil {
		return nil, err
	}
	err = tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.id asc")
	}).Preload("Items.MenuItem").First(cart, cart.ID).Error
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// FindLineByMenuItem returns the cart line for a menu item, or
// gorm.ErrRecordNotFound when the cart has no such line.
func (r *CartRepository) FindLineByMenuItem(tx *gorm.DB, cartID, menuItemID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// FindLine returns a cart line only when it belongs to the given cart.
func (r *CartRepository) FindLine(tx *gorm.DB, cartID, lineID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := tx.Where("id = ? AND cart_id = ?", lineID, cartID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) CreateLine(tx *gorm.DB, line *models.CartItem) error {
	return tx.Create(line).Error
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *models.CartItem) error {
	return tx.Save(line).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, lineID uint) error {
	return tx.Delete(&models.CartItem{}, lineID).Error
}

// Clear removes every line from the cart. The cart row itself stays.
func (r *CartRepository) Clear(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// Touch bumps the cart's updated_at after a mutation.
func (r *CartRepository) Touch(tx *gorm.DB, cartID uint) error {
	return tx.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}
