// Package services holds the persistence logic shared by every API version.
// Each function takes the request's GORM session explicitly; none of them
// commit, that is left to the caller's unit of work.
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested id has no row. It wraps
// gorm.ErrRecordNotFound.
var ErrNotFound = fmt.Errorf("record not found: %w", gorm.ErrRecordNotFound)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
