package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Postgres error classes interpreted here and nowhere else.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ErrorHandler is the terminal translator wired as the fiber error handler.
// Check order matters: domain-tagged errors win over raw store codes, since
// a use case may pre-empt the store with a clearer message.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *Error
		if errors.As(err, &appErr) {
			payload := fiber.Map{"error": appErr.Message}
			if appErr.Details != nil {
				payload["details"] = appErr.Details
			}
			return c.Status(appErr.Status).JSON(payload)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			meta := fiber.Map{
				"constraint": pgErr.ConstraintName,
				"table":      pgErr.TableName,
				"detail":     pgErr.Detail,
			}
			switch pgErr.Code {
			case pgUniqueViolation:
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":   "duplicate record",
					"details": meta,
				})
			case pgForeignKeyViolation:
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":   "foreign key constraint violated",
					"details": meta,
				})
			}
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "record not found",
				"details": err.Error(),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error":   fiberErr.Message,
				"details": fiberErr.Error(),
			})
		}

		log.Error("unclassified error",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
