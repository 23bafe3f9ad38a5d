package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	"github.com/Aadi-1821/RustynKart-backend/internal/events"
	"github.com/Aadi-1821/RustynKart-backend/internal/repository"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// OrderService coordinates order placement and fulfillment tracking. Cart
// clearing after checkout is the frontend's call; placing an order does not
// touch the cart document.
type OrderService struct {
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// OrderPlaceInput describes checkout payload.
type OrderPlaceInput struct {
	Items   []domain.OrderItem
	Amount  int64
	Address string
}

// PlaceOrder persists a new order for the user and announces it.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, input OrderPlaceInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, util.NewValidationError("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.ItemID == "" || item.Size == "" {
			return nil, util.NewValidationError("each item needs itemId and size")
		}
		if item.Quantity <= 0 {
			return nil, util.NewValidationError("item quantity must be positive")
		}
	}
	if input.Amount < 0 {
		return nil, util.NewValidationError("amount must be non-negative")
	}

	order := &domain.Order{
		UserID:  userID,
		Items:   input.Items,
		Amount:  input.Amount,
		Address: input.Address,
		Status:  domain.OrderStatusPlaced,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPlaced,
			SubjectID: userID,
			Timestamp: time.Now(),
			Payload: events.OrderPlacedPayload{
				OrderID: order.ID,
				Amount:  order.Amount,
				Items:   order.Items,
			},
		})
	}
	return order, nil
}

// ListUserOrders returns the caller's orders, newest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListAllOrders returns every order for the admin dashboard.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus moves an order to a new fulfillment state.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	switch status {
	case domain.OrderStatusPlaced, domain.OrderStatusPacking,
		domain.OrderStatusShipped, domain.OrderStatusDelivered:
	default:
		return util.NewValidationError("unknown order status")
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("order not found")
		}
		return err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("order not found")
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderStatus,
			SubjectID: order.UserID,
			Timestamp: time.Now(),
			Payload: events.OrderStatusPayload{
				OrderID:   orderID,
				OldStatus: order.Status,
				NewStatus: status,
			},
		})
	}
	return nil
}
