package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/Aadi-1821/RustynKart-backend/internal/api/http"
	"github.com/Aadi-1821/RustynKart-backend/internal/api/http/handlers"
	"github.com/Aadi-1821/RustynKart-backend/internal/auth"
	"github.com/Aadi-1821/RustynKart-backend/internal/cart"
	"github.com/Aadi-1821/RustynKart-backend/internal/config"
	"github.com/Aadi-1821/RustynKart-backend/internal/observability"
)

const testSecret = "handler-secret"

// newCartApp wires the cart routes through the real middleware stack and the
// in-memory store.
func newCartApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RequestTimeoutSeconds = 5
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}

	tokenMgr := auth.NewTokenManager(testSecret)
	guard := auth.NewSessionGuard(tokenMgr, "")
	aggregator := cart.NewAggregator(cart.NewMemoryStore())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, cfg, zap.NewNop(), observability.NewMetrics())

	cartHandler := handlers.NewCartHandler(aggregator)
	group := app.Group("/api/cart", guard.RequireUser())
	group.Post("/get", cartHandler.Get)
	group.Post("/add", cartHandler.Add)
	group.Post("/update", cartHandler.Update)

	return app
}

func userToken(t *testing.T, subject string) string {
	t.Helper()
	token, _, err := auth.NewTokenManager(testSecret).Issue(subject, time.Hour)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, token, path string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestCartEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)

		resp := doJSON(t, app, "", "/api/cart/get", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeJSON[map[string]any](t, resp)
		assert.Equal(t, "no_token_found", body["error"])
	})

	t.Run("get returns an empty document for a fresh principal", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)

		resp := doJSON(t, app, userToken(t, "user-1"), "/api/cart/get", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		document := decodeJSON[map[string]map[string]int](t, resp)
		assert.Empty(t, document)
	})

	t.Run("add then get", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)
		token := userToken(t, "user-1")

		resp := doJSON(t, app, token, "/api/cart/add", fiber.Map{"itemId": "shoe1", "size": "M"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeJSON[map[string]any](t, resp)
		assert.Equal(t, "Added to cart", body["message"])

		resp = doJSON(t, app, token, "/api/cart/add", fiber.Map{"itemId": "shoe1", "size": "M"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, token, "/api/cart/get", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		document := decodeJSON[map[string]map[string]int](t, resp)
		assert.Equal(t, 2, document["shoe1"]["M"])
	})

	t.Run("update overwrites quantity", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)
		token := userToken(t, "user-1")

		resp := doJSON(t, app, token, "/api/cart/add", fiber.Map{"itemId": "shoe1", "size": "M"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, token, "/api/cart/update",
			fiber.Map{"itemId": "shoe1", "size": "M", "quantity": 5})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeJSON[map[string]any](t, resp)
		assert.Equal(t, "Cart updated", body["message"])

		resp = doJSON(t, app, token, "/api/cart/get", nil)
		document := decodeJSON[map[string]map[string]int](t, resp)
		assert.Equal(t, 5, document["shoe1"]["M"])
	})

	t.Run("update of an absent size is 404", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)
		token := userToken(t, "user-1")

		resp := doJSON(t, app, token, "/api/cart/add", fiber.Map{"itemId": "shoe1", "size": "M"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = doJSON(t, app, token, "/api/cart/update",
			fiber.Map{"itemId": "shoe1", "size": "L", "quantity": 1})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeJSON[map[string]any](t, resp)
		assert.Equal(t, "Item or size not found in cart", body["message"])
	})

	t.Run("update without quantity is 400", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)
		token := userToken(t, "user-1")

		resp := doJSON(t, app, token, "/api/cart/update", fiber.Map{"itemId": "shoe1", "size": "M"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("body token authenticates the add", func(t *testing.T) {
		t.Parallel()
		app := newCartApp(t)
		token := userToken(t, "user-1")

		// no cookie or header: token travels in the JSON body itself
		resp := doJSON(t, app, "", "/api/cart/add",
			fiber.Map{"itemId": "shoe1", "size": "M", "token": token})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}
