package middlewares

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// VersionKey is the c.Locals key holding the requested API version.
	VersionKey = "apiVersion"

	headerSupportedVersions = "api-supported-versions"
)

// APIVersion reads the v{n} segment following prefix, reports the supported
// versions on every response and rejects unknown ones with 400.
func APIVersion(prefix string, supported ...int) fiber.Handler {
	known := make(map[int]bool, len(supported))
	names := make([]string, 0, len(supported))
	for _, v := range supported {
		known[v] = true
		names = append(names, strconv.Itoa(v))
	}
	reported := strings.Join(names, ", ")

	return func(c *fiber.Ctx) error {
		c.Set(headerSupportedVersions, reported)

		rest := strings.TrimPrefix(strings.TrimPrefix(c.Path(), prefix), "/")
		segment, _, _ := strings.Cut(rest, "/")
		if len(segment) < 2 || (segment[0] != 'v' && segment[0] != 'V') {
			return c.Next()
		}
		version, err := strconv.Atoi(segment[1:])
		if err != nil {
			return c.Next()
		}
		if !known[version] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "UnsupportedApiVersion",
					"message": "The HTTP resource that matches the request URI does not support the API version '" + segment[1:] + "'.",
				},
			})
		}

		c.Locals(VersionKey, version)
		return c.Next()
	}
}
