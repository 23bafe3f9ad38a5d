package auth_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	util "github.com/Aadi-1821/RustynKart-backend/pkg/util"
)

func newGuardApp(t *testing.T, secret, adminEmail string) *fiber.App {
	t.Helper()
	tm := auth.NewTokenManager(secret)
	guard := auth.NewSessionGuard(tm, adminEmail)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := util.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"message": domainErr.Message,
				"error":   domainErr.Code,
			})
		},
	})
	app.Get("/me", guard.RequireUser(), func(c *fiber.Ctx) error {
		principal, _ := auth.PrincipalFromContext(c)
		return c.JSON(fiber.Map{"subject": principal.SubjectID, "isAdmin": principal.IsAdmin})
	})
	app.Get("/admin", guard.RequireAdmin(), func(c *fiber.Ctx) error {
		principal, _ := auth.PrincipalFromContext(c)
		return c.JSON(fiber.Map{"subject": principal.SubjectID})
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestSessionGuardRequireUser(t *testing.T) {
	t.Parallel()
	const secret = "guard-secret"

	t.Run("missing credential", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, util.CodeNoTokenFound, decodeBody(t, resp)["error"])
	})

	t.Run("undefined cookie is treated as absent", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "undefined"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, util.CodeNoTokenFound, decodeBody(t, resp)["error"])
	})

	t.Run("valid cookie token", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")
		token, _, err := auth.NewTokenManager(secret).Issue("user-42", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "user-42", body["subject"])
		assert.Equal(t, false, body["isAdmin"])
	})

	t.Run("valid bearer token without cookie", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")
		token, _, err := auth.NewTokenManager(secret).Issue("user-42", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("valid token in custom header", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")
		token, _, err := auth.NewTokenManager(secret).Issue("user-42", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("X-Auth-Token", token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("valid token in query parameter", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")
		token, _, err := auth.NewTokenManager(secret).Issue("user-42", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me?token="+token, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")
		token, _, err := auth.NewTokenManager(secret).Issue("user-42", -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, util.CodeTokenExpired, decodeBody(t, resp)["error"])
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, "")

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, util.CodeInvalidToken, decodeBody(t, resp)["error"])
	})

	t.Run("missing secret at verification is a server error", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, "", "")

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "anything"})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, util.CodeServerConfigError, decodeBody(t, resp)["error"])
	})
}

func TestSessionGuardRequireAdmin(t *testing.T) {
	t.Parallel()
	const (
		secret     = "guard-secret"
		adminEmail = "admin@example.com"
	)

	t.Run("admin token passes", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, adminEmail)
		token, _, err := auth.NewTokenManager(secret).Issue(adminEmail, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, adminEmail, decodeBody(t, resp)["subject"])
	})

	t.Run("user token is rejected", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, adminEmail)
		token, _, err := auth.NewTokenManager(secret).Issue("user-42", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("user guard marks the admin subject", func(t *testing.T) {
		t.Parallel()
		app := newGuardApp(t, secret, adminEmail)
		token, _, err := auth.NewTokenManager(secret).Issue(adminEmail, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, decodeBody(t, resp)["isAdmin"])
	})
}
