package handlers

import (
	"errors"
	"log"

	"resto/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the Fiber error handler shared by every route. Each
// failure is answered with one {"status", "message"} object.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"status":  fe.Code,
			"message": fe.Message,
		})
	}

	status := errs.StatusOf(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  status,
		"message": errs.MessageOf(err),
	})
}
