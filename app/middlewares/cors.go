package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// allowedOrigins is the canonical allow-list; the last entry is the fallback
// echoed to callers whose origin is not listed.
var allowedOrigins = []string{
	"http://localhost:3000",
	"https://scholar-manager-git-main-jmtrinidads-projects-c5d38af8.vercel.app",
	"https://stronglabs.vercel.app",
}

// Cors returns a middleware that sets the access-control headers for a route
// group. The request origin is echoed only on an exact allow-list match;
// anything else gets the fallback origin. OPTIONS preflights short-circuit to
// an empty 200 with the same headers.
func Cors(allowMethods string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := allowedOrigins[len(allowedOrigins)-1]
		requestOrigin := c.Get(fiber.HeaderOrigin)
		for _, allowed := range allowedOrigins {
			if requestOrigin == allowed {
				origin = requestOrigin
				break
			}
		}

		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
