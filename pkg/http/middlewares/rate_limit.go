package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/objects"
	"github.com/oarkflow/signup/pkg/utils"
)

const msgTooManyRequests = "Too many attempts, fair soul. Rest a moment and try again."

// RateLimitWithMax limits each client to maxRequests per window on the
// routes it guards. Clients are told apart by c.IP(), which only honours a
// forwarded header when the app trusts the proxy that set it.
func RateLimitWithMax(maxRequests int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		},
		LimitReached: func(c *fiber.Ctx) error {
			objects.Log.Warn("rate limit exceeded",
				zap.String("request_id", utils.RequestID(c)),
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()))
			if utils.WantsJSON(c) {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error":       msgTooManyRequests,
					"retry_after": int(window.Seconds()),
				})
			}
			return c.Status(fiber.StatusTooManyRequests).SendString(msgTooManyRequests)
		},
	})
}
