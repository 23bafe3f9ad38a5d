package events

import (
	"time"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventOrderPlaced    EventType = "order_placed"
	EventOrderStatus    EventType = "order_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID string             `json:"order_id"`
	Amount  int64              `json:"amount"`
	Items   []domain.OrderItem `json:"items"`
}

// OrderStatusPayload payload.
type OrderStatusPayload struct {
	OrderID   string             `json:"order_id"`
	OldStatus domain.OrderStatus `json:"old_status"`
	NewStatus domain.OrderStatus `json:"new_status"`
}
