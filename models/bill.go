package models

// Bill is a read-only projection assembled from an Order plus restaurant and
// customer identity. It is never persisted and always reproduces the amounts
// stored on the order it was built from.
type Bill struct {
	OrderNumber         string     `json:"order_number"`
	OrderDate           string     `json:"order_date"`
	RestaurantName      string     `json:"restaurant_name"`
	RestaurantAddress   string     `json:"restaurant_address"`
	CustomerName        string     `json:"customer_name"`
	CustomerPhone       string     `json:"customer_phone"`
	DeliveryAddress     string     `json:"delivery_address,omitempty"`
	Items               []BillItem `json:"items"`
	Subtotal            float64    `json:"subtotal"`
	CGSTAmount          float64    `json:"cgst_amount"`
	SGSTAmount          float64    `json:"sgst_amount"`
	GSTAmount           float64    `json:"gst_amount"`
	TotalAmount         float64    `json:"total_amount"`
	TotalDisplay        string     `json:"total_display"`
	Status              string     `json:"status"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
}

type BillItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}
