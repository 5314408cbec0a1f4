package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null" json:"updated_at"`

	// Derived on every read, never stored.
	TotalItems int     `gorm:"-" json:"total_items"`
	Subtotal   float64 `gorm:"-" json:"subtotal"`
}

type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"not null;index" json:"cart_id"`
	Cart       Cart      `gorm:"foreignKey:CartID" json:"-"`
	MenuItemID uint      `gorm:"not null" json:"menu_item_id"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	// Unit price frozen when the item was first added. Later catalog price
	// changes do not touch it.
	PriceAtTime float64   `gorm:"type:decimal(10,2);not null" json:"price_at_time"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// RefreshTotals recomputes the derived cart fields from the current lines.
func (c *Cart) RefreshTotals() {
	c.TotalItems = 0
	c.Subtotal = 0
	for _, item := range c.Items {
		c.TotalItems += item.Quantity
		c.Subtotal += float64(item.Quantity) * item.PriceAtTime
	}
}
