package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// SetSessionCookie attaches the token as a cookie on the response. Cross-origin
// deployments need SameSite=None with Secure; local development keeps Lax so
// plain-HTTP testing works. The cookie stays readable by frontend scripts;
// clients that cannot rely on cookies re-send the token via header.
func SetSessionCookie(c *fiber.Ctx, token string, ttl time.Duration, production bool) {
	sameSite := fiber.CookieSameSiteLaxMode
	if production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: false,
		Secure:   production,
		SameSite: sameSite,
	})
}

// ClearSessionCookie expires the session cookie with the same attributes it
// was set with.
func ClearSessionCookie(c *fiber.Ctx, production bool) {
	sameSite := fiber.CookieSameSiteLaxMode
	if production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: false,
		Secure:   production,
		SameSite: sameSite,
	})
}
