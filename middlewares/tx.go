package middlewares

import (
	"cinevault-backend/database"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UnitOfWork opens a per-request DB transaction, commits it when the handler
// chain succeeds and rolls it back on error or panic.
// Order: run AFTER Idempotency() so idempotency records aren't tied to the handler TX.
func UnitOfWork(db *gorm.DB, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		tx := db.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			return tx.Error
		}

		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so the recover middleware can catch it
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.WithError(e).Error("tx commit failed")
				err = e
			}
		}()

		// Make the TX available to handlers via database.Session(c).
		c.Locals(database.TxKey, tx)

		err = c.Next()
		return err
	}
}
