package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Aadi-1821/RustynKart-backend/internal/api/dto"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/domain"
	"github.com/Aadi-1821/RustynKart-backend/internal/service"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth       *service.AuthService
	production bool
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, production bool) *AuthHandler {
	return &AuthHandler{auth: authService, production: production}
}

// Register handles POST /api/auth/registration.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return util.NewValidationError("name, email and password are required")
	}

	user, token, exp, err := h.auth.RegisterUser(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, h.auth.UserTokenTTL(), h.production)
	return c.Status(http.StatusCreated).JSON(userResponse(user, token, exp))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return util.NewValidationError("email and password are required")
	}

	user, token, exp, err := h.auth.LoginUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, h.auth.UserTokenTTL(), h.production)
	return c.JSON(userResponse(user, token, exp))
}

// GoogleLogin handles POST /api/auth/googlelogin.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if req.Name == "" || req.Email == "" {
		return util.NewValidationError("name and email are required")
	}

	user, token, exp, err := h.auth.GoogleLogin(c.Context(), req.Name, req.Email)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, h.auth.UserTokenTTL(), h.production)
	return c.JSON(userResponse(user, token, exp))
}

// AdminLogin handles POST /api/auth/adminlogin.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return util.NewValidationError("email and password are required")
	}

	token, _, err := h.auth.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, h.auth.AdminTokenTTL(), h.production)
	return c.JSON(fiber.Map{"token": token, "role": "admin"})
}

// Logout handles GET /api/auth/logout. Tokens are stateless; logout clears the
// client-held credential only.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Context()); err != nil {
		return err
	}
	auth.ClearSessionCookie(c, h.production)
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

func userResponse(user *domain.User, token string, exp time.Time) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: exp,
	}
}
