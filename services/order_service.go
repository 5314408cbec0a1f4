package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
	"github.com/elroydev/restaurant-ordering/repository"
	"github.com/elroydev/restaurant-ordering/tax"
	"github.com/elroydev/restaurant-ordering/utils"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Locks    *CartLocker
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, locks *CartLocker) *OrderService {
	return &OrderService{DB: db, Repo: or, CartRepo: cr, Locks: locks}
}

// PlaceOrder converts the user's cart into an order. The cart lines are
// deep-copied into immutable order items, the GST breakdown is computed
// from the snapshot, and the source cart is cleared in the same
// transaction. Either both happen or neither does.
func (s *OrderService) PlaceOrder(userID uint, deliveryAddress, specialInstructions string) (*models.Order, error) {
	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, ErrBlankAddress
	}

	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var order *models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetWithItems(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var subtotal float64
		items := make([]models.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			totalPrice := tax.Round2(float64(line.Quantity) * line.PriceAtTime)
			subtotal += totalPrice
			items = append(items, models.OrderItem{
				MenuItemID:  line.MenuItemID,
				Quantity:    line.Quantity,
				PriceAtTime: line.PriceAtTime,
				TotalPrice:  totalPrice,
			})
		}
		subtotal = tax.Round2(subtotal)

		gst, err := tax.CalculateGST(subtotal)
		if err != nil {
			return err
		}

		order = &models.Order{
			OrderNumber:         utils.GenerateOrderNumber(),
			UserID:              userID,
			Items:               items,
			Subtotal:            subtotal,
			CGSTAmount:          gst.CGST,
			SGSTAmount:          gst.SGST,
			GSTAmount:           gst.GST,
			TotalAmount:         tax.Round2(gst.Total),
			Status:              models.OrderStatusPending,
			DeliveryAddress:     deliveryAddress,
			SpecialInstructions: specialInstructions,
		}
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}

		if err := s.CartRepo.Clear(tx, cart.ID); err != nil {
			return err
		}
		return s.CartRepo.Touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s placed by user %d: subtotal=%.2f total=%.2f",
		order.OrderNumber, userID, order.Subtotal, order.TotalAmount)

	return s.Repo.GetByID(order.ID)
}

// GetOrder loads an order for the requesting user. Orders are only visible
// to their owner.
func (s *OrderService) GetOrder(orderID, requestingUserID uint) (*models.Order, error) {
	order, err := s.Repo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != requestingUserID {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(userID uint) ([]models.Order, error) {
	return s.Repo.ListByUser(userID)
}

// AdvanceStatus moves an order to the given target status. The transition
// is validated against the state machine first, then applied with a
// compare-and-set so that two concurrent requests cannot both succeed on a
// stale read.
func (s *OrderService) AdvanceStatus(orderID uint, target string) (*models.Order, error) {
	if !models.ValidOrderStatus(target) {
		return nil, ErrUnknownStatus
	}

	order, err := s.Repo.GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionOrderStatus(order.Status, target) {
		return nil, ErrInvalidTransition
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, order.ID, order.Status, target)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStatusConflict
	}

	utils.InfoLogger.Printf("Order %s: %s -> %s", order.OrderNumber, order.Status, target)

	return s.Repo.GetByID(order.ID)
}

// CancelOrder lets the owner cancel an order that has not reached a
// terminal state yet.
func (s *OrderService) CancelOrder(orderID, requestingUserID uint) (*models.Order, error) {
	order, err := s.GetOrder(orderID, requestingUserID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionOrderStatus(order.Status, models.OrderStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, order.ID, order.Status, models.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStatusConflict
	}

	utils.InfoLogger.Printf("Order %s cancelled by user %d", order.OrderNumber, requestingUserID)

	return s.Repo.GetByID(order.ID)
}
