package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
	"github.com/elroydev/restaurant-ordering/repository"
	"github.com/elroydev/restaurant-ordering/utils"
)

type BillService struct {
	Orders   *OrderService
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository
}

func NewBillService(os *OrderService, rr *repository.RestaurantRepository, ur *repository.UserRepository) *BillService {
	return &BillService{Orders: os, RestRepo: rr, UserRepo: ur}
}

// BuildBill assembles the printable bill for an order. Authorization and
// not-found handling come from GetOrder. Every amount is taken verbatim
// from the stored order; nothing is recomputed from live rates, so a bill
// always matches the order it was built from. Building the same bill twice
// yields identical results.
func (s *BillService) BuildBill(orderID, requestingUserID uint) (*models.Bill, error) {
	order, err := s.Orders.GetOrder(orderID, requestingUserID)
	if err != nil {
		return nil, err
	}

	restaurantName := "Restaurant"
	restaurantAddress := ""
	if restaurant, err := s.RestRepo.Get(); err == nil {
		restaurantName = restaurant.Name
		restaurantAddress = restaurant.Address
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customerName := "Guest"
	customerPhone := ""
	if user, err := s.UserRepo.GetByID(order.UserID); err == nil {
		if user.Name != "" {
			customerName = user.Name
		}
		customerPhone = user.Phone
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	items := make([]models.BillItem, 0, len(order.Items))
	for _, item := range order.Items {
		name := "Unknown Item"
		if item.MenuItem != nil {
			name = item.MenuItem.Name
		}
		items = append(items, models.BillItem{
			Name:     name,
			Quantity: item.Quantity,
			Price:    item.PriceAtTime,
			Total:    item.TotalPrice,
		})
	}

	return &models.Bill{
		OrderNumber:         order.OrderNumber,
		OrderDate:           order.CreatedAt.Format("2006-01-02 15:04:05"),
		RestaurantName:      restaurantName,
		RestaurantAddress:   restaurantAddress,
		CustomerName:        customerName,
		CustomerPhone:       customerPhone,
		DeliveryAddress:     order.DeliveryAddress,
		Items:               items,
		Subtotal:            order.Subtotal,
		CGSTAmount:          order.CGSTAmount,
		SGSTAmount:          order.SGSTAmount,
		GSTAmount:           order.GSTAmount,
		TotalAmount:         order.TotalAmount,
		TotalDisplay:        utils.FormatCurrencyINR(order.TotalAmount),
		Status:              order.Status,
		SpecialInstructions: order.SpecialInstructions,
	}, nil
}
