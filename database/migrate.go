package database

import (
	"fmt"

	"cinevault-backend/models"

	"gorm.io/gorm"
)

// Migrate applies the (idempotent) schema migrations: tables, columns,
// composite review indexes and foreign keys with cascading deletes, all
// driven by the model tags so the same call works on every driver.
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.Movie{},
			&models.User{},
			&models.Review{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}
		return nil
	})
}
