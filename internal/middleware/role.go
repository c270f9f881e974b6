package middleware

import (
	"slices"

	"resto/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// RequireRole rejects callers whose role is not one of roles. It must run
// after AuthRequired.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !slices.Contains(roles, CallerRole(c)) {
			return errs.New(errs.Forbidden, "Access denied for this role")
		}
		return c.Next()
	}
}
