package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID echoes the caller's X-Request-ID or mints one, so log lines and
// error reports can be correlated.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
