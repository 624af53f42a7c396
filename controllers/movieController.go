package controllers

import (
	"errors"

	"cinevault-backend/database"
	"cinevault-backend/dto"
	"cinevault-backend/middlewares"
	"cinevault-backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieController struct {
	log logrus.FieldLogger
}

func NewMovieController(log logrus.FieldLogger) *MovieController {
	return &MovieController{log: log.WithField("controller", "movies")}
}

func (mc *MovieController) GetMoviesV1(c *fiber.Ctx) error {
	mc.log.Info("Called GetMoviesVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	movies, err := services.ListMovies(tx)
	if err != nil {
		return err
	}
	return c.JSON(movies)
}

func (mc *MovieController) GetMoviesV2(c *fiber.Ctx) error {
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	mc.log.WithField("request_id", req.RequestID).Info("Called GetMoviesVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	movies, err := services.ListMovies(tx)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResponseWith(req, true, msgSuccess, fiber.StatusOK, movies))
}

func (mc *MovieController) GetMovieV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	log := mc.log.WithField("movie_id", id)
	log.Info("Called GetMovieByIdVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	movie, err := services.GetMovie(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("Movie not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(movie)
}

func (mc *MovieController) GetMovieV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := mc.log.WithFields(logrus.Fields{"movie_id": id, "request_id": req.RequestID})
	log.Info("Called GetMovieByIdVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	movie, err := services.GetMovie(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("Movie not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResponseWith(req, true, msgSuccess, fiber.StatusOK, movie))
}

func (mc *MovieController) CreateMovieV1(c *fiber.Ctx) error {
	var input dto.MovieRequest
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	mc.log.WithField("title", input.Title).Info("Called CreateMovieVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	movie, err := services.CreateMovie(tx, input)
	if err != nil {
		return err
	}
	mc.log.WithFields(logrus.Fields{"movie_id": movie.ID, "title": movie.Title}).Info("Movie created")
	setLocation(c, 1, "movies", movie.ID)
	return noContent(c, fiber.StatusCreated)
}

func (mc *MovieController) CreateMovieV2(c *fiber.Ctx) error {
	var req dto.APIRequestWith[dto.MovieRequest]
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	mc.log.WithFields(logrus.Fields{"title": req.Data.Title, "request_id": req.RequestID}).Info("Called CreateMovieVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	movie, err := services.CreateMovie(tx, req.Data)
	if err != nil {
		return err
	}
	mc.log.WithFields(logrus.Fields{"movie_id": movie.ID, "title": movie.Title}).Info("Movie created")
	setLocation(c, 2, "movies", movie.ID)
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusCreated))
}

func (mc *MovieController) UpdateMovieV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var input dto.MovieRequest
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	log := mc.log.WithField("movie_id", id)
	log.Info("Called UpdateMovieVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.UpdateMovie(tx, id, input)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("UpdateMovie: movie not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	log.Info("Movie updated successfully")
	return noContent(c, fiber.StatusOK)
}

func (mc *MovieController) UpdateMovieV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequestWith[dto.MovieRequest]
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := mc.log.WithFields(logrus.Fields{"movie_id": id, "request_id": req.RequestID})
	log.Info("Called UpdateMovieVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.UpdateMovie(tx, id, req.Data)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("UpdateMovie: movie not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	log.Info("Movie updated successfully")
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusOK))
}

func (mc *MovieController) DeleteMovieV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	log := mc.log.WithField("movie_id", id)
	log.Info("Called DeleteMovieVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.DeleteMovie(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("DeleteMovie: movie not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	log.Info("Movie deleted successfully")
	return noContent(c, fiber.StatusOK)
}

func (mc *MovieController) DeleteMovieV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := mc.log.WithFields(logrus.Fields{"movie_id": id, "request_id": req.RequestID})
	log.Info("Called DeleteMovieVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.DeleteMovie(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("DeleteMovie: movie not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	log.Info("Movie deleted successfully")
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusOK))
}
