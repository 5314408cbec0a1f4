package services

import "errors"

// Every core operation fails with one of these typed values. Controllers
// translate them to HTTP codes; nothing here is swallowed silently.
var (
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrItemUnavailable   = errors.New("menu item is currently not available")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrBlankAddress      = errors.New("delivery address is required")
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("order does not belong to this user")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
	ErrStatusConflict    = errors.New("order status changed concurrently, please retry")
)
