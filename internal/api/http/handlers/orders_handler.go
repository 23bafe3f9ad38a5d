package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadi-1821/RustynKart-backend/internal/api/dto"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	"github.com/Aadi-1821/RustynKart-backend/internal/service"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// OrdersHandler exposes checkout and fulfillment endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs the handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Place handles POST /api/order/place.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized(util.CodeNoTokenFound, "authentication required")
	}

	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}

	order, err := h.orders.PlaceOrder(c.Context(), principal.SubjectID, service.OrderPlaceInput{
		Items:   req.Items,
		Amount:  req.Amount,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// UserOrders handles POST /api/order/userorders.
func (h *OrdersHandler) UserOrders(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized(util.CodeNoTokenFound, "authentication required")
	}

	orders, err := h.orders.ListUserOrders(c.Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(orderResponses(orders))
}

// ListAll handles GET /api/order/list for the admin dashboard.
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orders.ListAllOrders(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(orderResponses(orders))
}

// UpdateStatus handles POST /api/order/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.OrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if req.OrderID == "" || req.Status == "" {
		return util.NewValidationError("orderId and status are required")
	}

	if err := h.orders.UpdateStatus(c.Context(), req.OrderID, domain.OrderStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}

func orderResponses(orders []domain.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewOrderResponse(&orders[i]))
	}
	return items
}
