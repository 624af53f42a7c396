package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	msgSuccess = "Success"
	msgFailure = "Failure"
)

// noContent answers with status and an empty body.
func noContent(c *fiber.Ctx, status int) error {
	c.Status(status)
	return nil
}

func setLocation(c *fiber.Ctx, version int, resource string, id int) {
	c.Location(fmt.Sprintf("/api/v%d/%s/%d", version, resource, id))
}
