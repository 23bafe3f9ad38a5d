package domain

import "time"

// OrderStatus tracks fulfillment progress.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPacking   OrderStatus = "PACKING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// OrderItem is one product/size line in an order.
type OrderItem struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// Order is a placed order owned by one user.
type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	Amount    int64
	Address   string
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
