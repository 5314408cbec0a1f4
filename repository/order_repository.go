package repository

import (
	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists an order together with its frozen line items.
func (r *OrderRepository) Create(tx *gorm.DB, order *models.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) GetByID(orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id asc")
	}).Preload("Items.MenuItem").First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").Preload("Items.MenuItem").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByStatus(status string) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.Preload("Items").Where("status = ?", status).
		Order("created_at asc").Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves the order status with a compare-and-set on the
// stored value. It returns the number of rows changed; zero means the
// order was no longer in the expected status.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
