package models

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// orderStatusSuccessors holds the legal forward transitions. The happy path
// is linear; cancelled is reachable from every non-terminal state.
var orderStatusSuccessors = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	_, ok := orderStatusSuccessors[s]
	return ok
}

// CanTransitionOrderStatus reports whether an order may move from one
// status to the given target.
func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderStatusSuccessors[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalOrderStatus reports whether no further transitions exist.
func IsTerminalOrderStatus(s string) bool {
	return len(orderStatusSuccessors[s]) == 0
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	// All monetary amounts are rounded to 2 decimal places when stored and
	// are never recomputed from live menu prices.
	Subtotal            float64   `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	CGSTAmount          float64   `gorm:"type:decimal(10,2);not null" json:"cgst_amount"`
	SGSTAmount          float64   `gorm:"type:decimal(10,2);not null" json:"sgst_amount"`
	GSTAmount           float64   `gorm:"type:decimal(10,2);not null" json:"gst_amount"`
	TotalAmount         float64   `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status              string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	DeliveryAddress     string    `gorm:"type:text" json:"delivery_address,omitempty"`
	SpecialInstructions string    `gorm:"type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}
