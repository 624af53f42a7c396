package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body into dst and validates it.
// Returns fiber.ErrBadRequest for parse errors and a validator.ValidationErrors for validation issues.
func BindAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validate.Struct(dst)
}

type stamper interface {
	Stamp()
}

// BindEnvelope binds a v2 request envelope and then assigns its server-side
// request id and timestamp.
func BindEnvelope(c *fiber.Ctx, dst stamper) error {
	if err := BindAndValidate(c, dst); err != nil {
		return err
	}
	dst.Stamp()
	return nil
}

// ParamID reads the integer :id route parameter.
func ParamID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
