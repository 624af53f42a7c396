package database

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TxKey is the c.Locals key holding the request's *gorm.DB transaction.
const TxKey = "tx"

// Session returns the unit-of-work transaction opened for this request by
// middlewares.UnitOfWork.
func Session(c *fiber.Ctx) (*gorm.DB, error) {
	if v := c.Locals(TxKey); v != nil {
		if tx, ok := v.(*gorm.DB); ok && tx != nil {
			return tx, nil
		}
	}
	return nil, errors.New("no database session bound to request")
}
