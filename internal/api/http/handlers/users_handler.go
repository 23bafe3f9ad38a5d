package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadi-1821/RustynKart-backend/internal/api/dto"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/service"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// UsersHandler exposes principal-scoped user endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// GetCurrentUser handles GET /api/user/getcurrentuser. The password hash never
// leaves the service.
func (h *UsersHandler) GetCurrentUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return util.NewUnauthorized(util.CodeNoTokenFound, "authentication required")
	}

	user, err := h.auth.CurrentUser(c.Context(), principal.SubjectID)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// GetAdmin handles GET /api/user/getadmin, reached only through the admin
// guard.
func (h *UsersHandler) GetAdmin(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || !principal.IsAdmin {
		return util.NewForbidden("admin access required")
	}
	return c.JSON(fiber.Map{"email": principal.SubjectID, "role": "admin"})
}
