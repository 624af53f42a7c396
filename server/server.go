// Package server assembles the fiber application.
package server

import (
	"time"

	"cinevault-backend/config"
	"cinevault-backend/middlewares"
	"cinevault-backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New builds the app with its global error handler, body limit, timing and
// metrics middleware, CORS, the optional rate limiter and all routes.
func New(cfg config.Config, db *gorm.DB, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          middlewares.ErrorHandler(log, cfg.IsLocal()),
		BodyLimit:             cfg.BodyLimitBytes(),
		DisableStartupMessage: true,
	})

	// Timing wraps everything; recover sits inside it so panics surface as errors.
	app.Use(middlewares.TimeWatcher(log))
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.IsLocal()}))
	app.Use(middlewares.Metrics())

	// Preflight needs Origin and Access-Control-Request-Method, so plain
	// OPTIONS reads on v2 pass through.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: false,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
		ExposeHeaders:    "Location, api-supported-versions",
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: time.Duration(cfg.RateLimitWindowSec) * time.Second,
		}))
	}

	routes.Register(app, db, log, cfg.Env)
	return app
}
