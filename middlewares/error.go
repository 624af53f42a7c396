package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler centralizes error responses and keeps messages sanitized.
// With showDetails set (the Local environment) 500 bodies also carry the
// underlying error text.
func ErrorHandler(log logrus.FieldLogger, showDetails bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// 1) Fiber errors (use their status code + message)
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		// 2) Validation errors (400 + per-field info)
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			out := make(map[string]string, len(ve))
			for _, fieldErr := range ve {
				out[fieldErr.Field()] = fieldErr.Tag()
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "validation failed",
				"errors":  out,
			})
		}

		// 3) Unknown errors (500)
		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).WithError(err).Error("internal error")

		body := fiber.Map{"message": "internal server error"}
		if showDetails {
			body["error"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

// StatusOf reports the status ErrorHandler will answer err with.
func StatusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
