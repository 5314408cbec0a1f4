package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/elroydev/restaurant-ordering/models"
	"github.com/elroydev/restaurant-ordering/repository"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Locks    *CartLocker
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, locks *CartLocker) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, Locks: locks}
}

// GetCart returns the user's cart, creating an empty one on first access.
// Derived totals are recomputed fresh on every call.
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	return s.loadCart(userID)
}

// AddItem puts a menu item into the cart. If a line for the same menu item
// already exists its quantity is incremented and the snapshot price is kept;
// the price captured at the first add wins even when the catalog price
// changed in between.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	menuItem, err := s.MenuRepo.GetByID(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if !menuItem.IsAvailable {
		return nil, ErrItemUnavailable
	}

	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		line, err := s.CartRepo.FindLineByMenuItem(tx, cart.ID, menuItemID)
		switch {
		case err == nil:
			line.Quantity += quantity
			if err := s.CartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &models.CartItem{
				CartID:      cart.ID,
				MenuItemID:  menuItemID,
				Quantity:    quantity,
				PriceAtTime: menuItem.Price,
			}
			if err := s.CartRepo.CreateLine(tx, line); err != nil {
				return err
			}
		default:
			return err
		}

		return s.CartRepo.Touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.loadCart(userID)
}

// UpdateQuantity sets a line's quantity. A target of zero or below removes
// the line entirely; a quantity of at least one never does.
func (s *CartService) UpdateQuantity(userID, lineID uint, quantity int) (*models.Cart, error) {
	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		line, err := s.CartRepo.FindLine(tx, cart.ID, lineID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		if err != nil {
			return err
		}

		if quantity <= 0 {
			if err := s.CartRepo.DeleteLine(tx, line.ID); err != nil {
				return err
			}
		} else {
			line.Quantity = quantity
			if err := s.CartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		}

		return s.CartRepo.Touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.loadCart(userID)
}

// RemoveItem deletes a cart line. Removing a line that does not exist is a
// no-op success so that a double click from the UI does not surface an
// error.
func (s *CartService) RemoveItem(userID, lineID uint) (*models.Cart, error) {
	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}

		line, err := s.CartRepo.FindLine(tx, cart.ID, lineID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.CartRepo.DeleteLine(tx, line.ID); err != nil {
			return err
		}
		return s.CartRepo.Touch(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.loadCart(userID)
}

// Clear empties the cart and returns it. An empty cart is a valid state,
// not an error.
func (s *CartService) Clear(userID uint) (*models.Cart, error) {
	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
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

	return s.loadCart(userID)
}

func (s *CartService) loadCart(userID uint) (*models.Cart, error) {
	cart, err := s.CartRepo.GetWithItems(s.DB, userID)
	if err != nil {
		return nil, err
	}
	cart.RefreshTotals()
	return cart, nil
}
