package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titled struct {
	Title string `json:"title" validate:"required"`
}

func errorApp(showDetails bool) *fiber.App {
	log, _ := test.NewNullLogger()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log, showDetails)})
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/invalid", func(c *fiber.Ctx) error { return validate.Struct(titled{}) })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("constraint violated") })
	return app
}

func call(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestErrorHandler(t *testing.T) {
	app := errorApp(false)

	status, body := call(t, app, "/teapot")
	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Equal(t, "short and stout", body["message"])

	status, body = call(t, app, "/invalid")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"Title": "required"}, body["errors"])

	status, body = call(t, app, "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, body, "error")
}

func TestErrorHandlerShowsDetailsLocally(t *testing.T) {
	status, body := call(t, errorApp(true), "/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "constraint violated", body["error"])
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, StatusOf(fiber.ErrNotFound))
	assert.Equal(t, fiber.StatusBadRequest, StatusOf(validate.Struct(titled{})))
	assert.Equal(t, fiber.StatusInternalServerError, StatusOf(errors.New("x")))
}
