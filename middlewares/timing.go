package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// TimeWatcher logs the start and end of every request with its elapsed time.
// A failing handler chain is logged as a warning and its error returned
// unchanged.
func TimeWatcher(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		start := time.Now()
		method, path := c.Method(), c.Path()

		log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Infof("Starting request: %s %s", method, path)

		defer func() {
			status := c.Response().StatusCode()
			if err != nil {
				status = StatusOf(err)
			}
			elapsed := time.Since(start).Milliseconds()
			log.WithFields(logrus.Fields{
				"method":     method,
				"path":       path,
				"status":     status,
				"elapsed_ms": elapsed,
			}).Infof("HTTP %s %s responded %d in %d ms", method, path, status, elapsed)
		}()

		if err = c.Next(); err != nil {
			log.WithFields(logrus.Fields{
				"method": method,
				"path":   path,
			}).WithError(err).Warnf("Exception caught processing request: %s %s", method, path)
			return err
		}
		return nil
	}
}
