package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIVersion(t *testing.T) {
	app := fiber.New()
	api := app.Group("/api", APIVersion("/api", 1, 2))
	echo := func(c *fiber.Ctx) error {
		v, _ := c.Locals(VersionKey).(int)
		return c.JSON(fiber.Map{"version": v})
	}
	api.Get("/v1/echo", echo)
	api.Get("/v2/echo", echo)
	api.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/api/v1/echo", status: http.StatusOK, body: `{"version":1}`},
		{path: "/api/V2/echo", status: http.StatusOK, body: `{"version":2}`},
		{path: "/api/v7/echo", status: http.StatusBadRequest},
		{path: "/api/health", status: http.StatusOK, body: "ok"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.path)
		assert.Equal(t, "1, 2", resp.Header.Get("api-supported-versions"), tt.path)
		raw, _ := io.ReadAll(resp.Body)
		if tt.body != "" {
			assert.Equal(t, tt.body, string(raw), tt.path)
		} else {
			assert.Contains(t, string(raw), "UnsupportedApiVersion", tt.path)
		}
	}
}
