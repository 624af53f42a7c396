package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"cinevault-backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const idempotencyHeader = "Idempotency-Key"

// errReplayed aborts the lookup transaction after a stored response was sent.
var errReplayed = errors.New("idempotent response replayed")

// Idempotency processes Idempotency-Key for mutating HTTP methods.
// It uses its own short transactions so the stored keys survive a rolled
// back request.
func Idempotency(db *gorm.DB, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch && method != fiber.MethodDelete {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get(idempotencyHeader))
		if key == "" {
			return c.Next()
		}
		if len(key) > 128 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Idempotency-Key too long"})
		}

		path := c.OriginalURL() // includes query string

		// Build deterministic request hash: method|path|body
		h := sha256.New()
		h.Write([]byte(method))
		h.Write([]byte{'\n'})
		h.Write([]byte(path))
		h.Write([]byte{'\n'})
		h.Write(c.Body())
		reqHash := hex.EncodeToString(h.Sum(nil))

		// ---- Phase 1: read/create "pending" under a short TX
		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.IdempotencyKey
			if err := tx.Where(&models.IdempotencyKey{Key: key}).First(&existing).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusInternalServerError, "idempotency lookup failed")
				}
				// Not found -> create "pending"
				rec := models.IdempotencyKey{
					Key:         key,
					RequestHash: reqHash,
					Method:      method,
					Path:        path,
				}
				res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec)
				if res.Error != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "idempotency create failed")
				}
				if res.RowsAffected == 0 {
					// Lost a unique race: read the winner
					if e3 := tx.Where(&models.IdempotencyKey{Key: key}).First(&existing).Error; e3 != nil {
						return fiber.NewError(fiber.StatusInternalServerError, "idempotency create failed")
					}
				} else {
					existing = rec
				}
			}

			if existing.RequestHash != reqHash {
				return fiber.NewError(fiber.StatusConflict, "Idempotency-Key reuse with different request")
			}
			if existing.ResponseStatus != 0 {
				// Completed response stored: short-circuit (no handler run)
				if existing.ContentType != "" {
					c.Set(fiber.HeaderContentType, existing.ContentType)
				}
				if existing.Location != "" {
					c.Set(fiber.HeaderLocation, existing.Location)
				}
				c.Status(existing.ResponseStatus)
				if err := c.Send(existing.ResponseBody); err != nil {
					return err
				}
				return errReplayed
			}

			// Pending/in-progress: let the request run
			return nil
		})
		if errors.Is(err, errReplayed) {
			log.WithField("idempotency_key", key).Info("Replayed stored response")
			return nil
		}
		if err != nil {
			return err
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			return nil
		}

		// ---- Phase 2: store the response under another short TX
		now := time.Now().UTC()
		resp := c.Response().Body()
		blob := make([]byte, len(resp))
		copy(blob, resp)

		if err := db.Model(&models.IdempotencyKey{}).
			Where(&models.IdempotencyKey{Key: key}).
			Updates(map[string]any{
				"response_status": status,
				"content_type":    string(c.Response().Header.ContentType()),
				"location":        string(c.Response().Header.Peek(fiber.HeaderLocation)),
				"response_body":   blob,
				"completed_at":    &now,
			}).Error; err != nil {
			// best-effort: don't break the successful response
			log.WithField("idempotency_key", key).WithError(err).Warn("Could not store idempotent response")
		}

		return nil
	}
}
