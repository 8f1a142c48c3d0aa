package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/syedwebdesign/intake_backend/pkg/ratelimit"
)

// Limit rejects requests over the limiter's cap with 429 and a Retry-After
// hint equal to the window length. The check runs before the body is read,
// so it must be registered ahead of the route handler.
func Limit(l *ratelimit.Limiter) fiber.Handler {
	retryAfter := strconv.Itoa(int(l.Window() / time.Second))
	return func(c fiber.Ctx) error {
		identity := ClientIdentity(c)
		if !l.Allow(identity) {
			slog.Warn("rate limit exceeded", "identity", identity, "path", c.Path())
			c.Set("Retry-After", retryAfter)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		}
		return c.Next()
	}
}
