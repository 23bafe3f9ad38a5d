package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadi-1821/RustynKart-backend/internal/api/dto"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/cart"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// CartHandler exposes the principal-scoped cart endpoints. Every route sits
// behind the session guard, so a principal is always present.
type CartHandler struct {
	carts *cart.Aggregator
}

// NewCartHandler constructs the handler.
func NewCartHandler(aggregator *cart.Aggregator) *CartHandler {
	return &CartHandler{carts: aggregator}
}

// Get handles POST /api/cart/get and returns the cart document verbatim.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized(util.CodeNoTokenFound, "authentication required")
	}

	document, err := h.carts.Read(c.Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(document)
}

// Add handles POST /api/cart/add.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized(util.CodeNoTokenFound, "authentication required")
	}

	var req dto.CartAddRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}

	if err := h.carts.Add(c.Context(), principal.SubjectID, req.ItemID, req.Size); err != nil {
		return mapCartError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "Added to cart"})
}

// Update handles POST /api/cart/update.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized(util.CodeNoTokenFound, "authentication required")
	}

	var req dto.CartUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if req.ItemID == "" || req.Size == "" || req.Quantity == nil {
		return util.NewValidationError("itemId, size, and quantity are required")
	}

	if err := h.carts.Update(c.Context(), principal.SubjectID, req.ItemID, req.Size, *req.Quantity); err != nil {
		return mapCartError(err)
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

func mapCartError(err error) error {
	switch {
	case errors.Is(err, cart.ErrItemNotInCart):
		return util.NewNotFound("Item or size not found in cart")
	case errors.Is(err, cart.ErrMissingKeys), errors.Is(err, cart.ErrNegativeQuantity):
		return util.NewValidationError(err.Error())
	default:
		return err
	}
}
