package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWatcherLogsStartAndEnd(t *testing.T) {
	log, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(TimeWatcher(log))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Starting request: GET /ping", entries[0].Message)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, fiber.StatusTeapot, entries[1].Data["status"])
	assert.Equal(t, "/ping", entries[1].Data["path"])
	assert.Contains(t, entries[1].Data, "elapsed_ms")
}

func TestTimeWatcherWarnsAndPropagatesErrors(t *testing.T) {
	boom := errors.New("db unreachable")
	var seen error

	log, hook := test.NewNullLogger()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			seen = err
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Use(TimeWatcher(log))
	app.Get("/fail", func(c *fiber.Ctx) error { return boom })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Same(t, boom, seen)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, boom, e.Data[logrus.ErrorKey])
		}
	}
	assert.True(t, warned)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, fiber.StatusInternalServerError, last.Data["status"])
}
