package dto

import (
	"time"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	Items   []domain.OrderItem `json:"items"`
	Amount  int64              `json:"amount"`
	Address string             `json:"address"`
}

// OrderStatusRequest moves an order to a new fulfillment state.
type OrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Items     []domain.OrderItem `json:"items"`
	Amount    int64              `json:"amount"`
	Address   string             `json:"address"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     o.Items,
		Amount:    o.Amount,
		Address:   o.Address,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}
