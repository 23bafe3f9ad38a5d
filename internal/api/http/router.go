package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Aadi-1821/RustynKart-backend/internal/api/http/handlers"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Users    *handlers.UsersHandler
	Products *handlers.ProductsHandler
	Cart     *handlers.CartHandler
	Orders   *handlers.OrdersHandler
	Guard    *auth.SessionGuard
}

// RegisterRoutes wires HTTP routes. Every principal-scoped route sits behind
// the session guard; catalog mutation behind the admin guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Live)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/registration", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/logout", cfg.Auth.Logout)
	authGroup.Post("/googlelogin", cfg.Auth.GoogleLogin)
	authGroup.Post("/adminlogin", cfg.Auth.AdminLogin)

	userGroup := api.Group("/user")
	userGroup.Get("/getcurrentuser", cfg.Guard.RequireUser(), cfg.Users.GetCurrentUser)
	userGroup.Get("/getadmin", cfg.Guard.RequireAdmin(), cfg.Users.GetAdmin)

	productGroup := api.Group("/product")
	productGroup.Get("/list", cfg.Products.List)
	productGroup.Post("/addproduct", cfg.Guard.RequireAdmin(), cfg.Products.Add)
	productGroup.Post("/remove/:id", cfg.Guard.RequireAdmin(), cfg.Products.Remove)

	cartGroup := api.Group("/cart", cfg.Guard.RequireUser())
	cartGroup.Post("/get", cfg.Cart.Get)
	cartGroup.Post("/add", cfg.Cart.Add)
	cartGroup.Post("/update", cfg.Cart.Update)

	orderGroup := api.Group("/order")
	orderGroup.Post("/place", cfg.Guard.RequireUser(), cfg.Orders.Place)
	orderGroup.Post("/userorders", cfg.Guard.RequireUser(), cfg.Orders.UserOrders)
	orderGroup.Get("/list", cfg.Guard.RequireAdmin(), cfg.Orders.ListAll)
	orderGroup.Post("/status", cfg.Guard.RequireAdmin(), cfg.Orders.UpdateStatus)
}
