package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(buf *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger), Security())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": c.Locals("requestID")})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})
	return app
}

func TestStructuredLogger(t *testing.T) {
	t.Run("Generates a request ID", func(t *testing.T) {
		var buf bytes.Buffer
		app := setupTestApp(&buf)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
		require.NoError(t, err)

		requestID := resp.Header.Get(fiber.HeaderXRequestID)
		_, err = uuid.Parse(requestID)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), `"msg":"request completed"`)
		assert.Contains(t, buf.String(), requestID)
	})

	t.Run("Keeps a valid incoming request ID", func(t *testing.T) {
		var buf bytes.Buffer
		app := setupTestApp(&buf)
		incoming := uuid.New().String()

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderXRequestID, incoming)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, incoming, resp.Header.Get(fiber.HeaderXRequestID))
	})

	t.Run("Replaces a malformed incoming request ID", func(t *testing.T) {
		var buf bytes.Buffer
		app := setupTestApp(&buf)

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderXRequestID, "forged-id")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.NotContains(t, resp.Header.Get(fiber.HeaderXRequestID), "forged")
	})

	t.Run("Client errors log at warn", func(t *testing.T) {
		var buf bytes.Buffer
		app := setupTestApp(&buf)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"msg":"client error"`)
	})
}

func TestSecurityHeaders(t *testing.T) {
	var buf bytes.Buffer
	app := setupTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}
