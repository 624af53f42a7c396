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

type ReviewController struct {
	log logrus.FieldLogger
}

func NewReviewController(log logrus.FieldLogger) *ReviewController {
	return &ReviewController{log: log.WithField("controller", "reviews")}
}

func (rc *ReviewController) GetReviewsV1(c *fiber.Ctx) error {
	rc.log.Info("Called GetReviewsVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	reviews, err := services.ListReviews(tx)
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}

func (rc *ReviewController) GetReviewsV2(c *fiber.Ctx) error {
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	rc.log.WithField("request_id", req.RequestID).Info("Called GetReviewsVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	reviews, err := services.ListReviews(tx)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResponseWith(req, true, msgSuccess, fiber.StatusOK, reviews))
}

func (rc *ReviewController) GetReviewV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	log := rc.log.WithField("review_id", id)
	log.Info("Called GetReviewByIdVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	review, err := services.GetReview(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("Review not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(review)
}

func (rc *ReviewController) GetReviewV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := rc.log.WithFields(logrus.Fields{"review_id": id, "request_id": req.RequestID})
	log.Info("Called GetReviewByIdVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	review, err := services.GetReview(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("Review not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.ToResponseWith(req, true, msgSuccess, fiber.StatusOK, review))
}

func (rc *ReviewController) CreateReviewV1(c *fiber.Ctx) error {
	var input dto.ReviewRequest
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	rc.log.WithFields(logrus.Fields{"movie_id": input.MovieID, "user_id": input.UserID}).Info("Called CreateReviewVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	review, err := services.CreateReview(tx, input)
	if err != nil {
		return err
	}
	rc.log.WithFields(logrus.Fields{"review_id": review.ID, "movie_id": review.MovieID, "user_id": review.UserID}).Info("Review created")
	setLocation(c, 1, "reviews", review.ID)
	return noContent(c, fiber.StatusCreated)
}

func (rc *ReviewController) CreateReviewV2(c *fiber.Ctx) error {
	var req dto.APIRequestWith[dto.ReviewRequest]
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	rc.log.WithFields(logrus.Fields{"movie_id": req.Data.MovieID, "user_id": req.Data.UserID, "request_id": req.RequestID}).Info("Called CreateReviewVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	review, err := services.CreateReview(tx, req.Data)
	if err != nil {
		return err
	}
	rc.log.WithFields(logrus.Fields{"review_id": review.ID, "movie_id": review.MovieID, "user_id": review.UserID}).Info("Review created")
	setLocation(c, 2, "reviews", review.ID)
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusCreated))
}

func (rc *ReviewController) UpdateReviewV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var input dto.ReviewRequest
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	log := rc.log.WithField("review_id", id)
	log.Info("Called UpdateReviewVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.UpdateReview(tx, id, input)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("UpdateReview: review not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	log.Info("Review updated successfully")
	return noContent(c, fiber.StatusOK)
}

func (rc *ReviewController) UpdateReviewV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequestWith[dto.ReviewRequest]
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := rc.log.WithFields(logrus.Fields{"review_id": id, "request_id": req.RequestID})
	log.Info("Called UpdateReviewVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.UpdateReview(tx, id, req.Data)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("UpdateReview: review not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	log.Info("Review updated successfully")
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusOK))
}

func (rc *ReviewController) DeleteReviewV1(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	log := rc.log.WithField("review_id", id)
	log.Info("Called DeleteReviewVer1")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.DeleteReview(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("DeleteReview: review not found")
		return noContent(c, fiber.StatusNotFound)
	}
	if err != nil {
		return err
	}
	log.Info("Review deleted successfully")
	return noContent(c, fiber.StatusOK)
}

func (rc *ReviewController) DeleteReviewV2(c *fiber.Ctx) error {
	id, err := middlewares.ParamID(c)
	if err != nil {
		return err
	}
	var req dto.APIRequest
	if err := middlewares.BindEnvelope(c, &req); err != nil {
		return err
	}
	log := rc.log.WithFields(logrus.Fields{"review_id": id, "request_id": req.RequestID})
	log.Info("Called DeleteReviewVer2")
	tx, err := database.Session(c)
	if err != nil {
		return err
	}

	err = services.DeleteReview(tx, id)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn("DeleteReview: review not found")
		return c.Status(fiber.StatusNotFound).JSON(req.ToResponse(false, msgFailure, fiber.StatusNotFound))
	}
	if err != nil {
		return err
	}
	log.Info("Review deleted successfully")
	return c.JSON(req.ToResponse(true, msgSuccess, fiber.StatusOK))
}
