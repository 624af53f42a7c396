package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"cinevault-backend/controllers"
	"cinevault-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, log logrus.FieldLogger, env string) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(middlewares.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	// Version check FIRST (unknown versions never touch the database)
	api.Use(middlewares.APIVersion("/api", 1, 2))

	// Idempotency guard (not tied to request TX)
	api.Use(middlewares.Idempotency(db, log))

	// Then the per-request unit of work (commits/rolls back)
	api.Use(middlewares.UnitOfWork(db, log))

	movies := controllers.NewMovieController(log)
	reviews := controllers.NewReviewController(log)
	users := controllers.NewUserController(log)
	appInfo := controllers.NewAppInfoController(env)

	// v1: plain verbs, bare DTOs
	v1 := api.Group("/v1")

	v1.Get("/movies", movies.GetMoviesV1)
	v1.Get("/movies/:id", movies.GetMovieV1)
	v1.Post("/movies", movies.CreateMovieV1)
	v1.Put("/movies/:id", movies.UpdateMovieV1)
	v1.Delete("/movies/:id", movies.DeleteMovieV1)

	v1.Get("/reviews", reviews.GetReviewsV1)
	v1.Get("/reviews/:id", reviews.GetReviewV1)
	v1.Post("/reviews", reviews.CreateReviewV1)
	v1.Put("/reviews/:id", reviews.UpdateReviewV1)
	v1.Delete("/reviews/:id", reviews.DeleteReviewV1)

	v1.Get("/users", users.GetUsersV1)
	v1.Get("/users/:id", users.GetUserV1)
	v1.Post("/users", users.CreateUserV1)
	v1.Put("/users/:id", users.UpdateUserV1)
	v1.Delete("/users/:id", users.DeleteUserV1)

	v1.Get("/appinfo/environment", appInfo.GetEnvironment)
	v1.Get("/appinfo/code", appInfo.GetCodeV1)

	// v2: envelopes; reads answer OPTIONS for wire compatibility with existing clients
	v2 := api.Group("/v2")

	v2.Options("/movies", movies.GetMoviesV2)
	v2.Options("/movies/:id", movies.GetMovieV2)
	v2.Post("/movies", movies.CreateMovieV2)
	v2.Put("/movies/:id", movies.UpdateMovieV2)
	v2.Delete("/movies/:id", movies.DeleteMovieV2)

	v2.Options("/reviews", reviews.GetReviewsV2)
	v2.Options("/reviews/:id", reviews.GetReviewV2)
	v2.Post("/reviews", reviews.CreateReviewV2)
	v2.Put("/reviews/:id", reviews.UpdateReviewV2)
	v2.Delete("/reviews/:id", reviews.DeleteReviewV2)

	v2.Options("/users", users.GetUsersV2)
	v2.Options("/users/:id", users.GetUserV2)
	v2.Post("/users", users.CreateUserV2)
	v2.Put("/users/:id", users.UpdateUserV2)
	v2.Delete("/users/:id", users.DeleteUserV2)

	v2.Get("/appinfo/environment", appInfo.GetEnvironment)
	v2.Get("/appinfo/code", appInfo.GetCodeV2)
}
