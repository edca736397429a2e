package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oarkflow/xid/wuid"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/objects"
	"github.com/oarkflow/signup/pkg/utils"
)

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = strconv.FormatInt(wuid.New().Int64(), 36)
	}
	c.Locals(utils.RequestIDKey, id)
	c.Set("X-Request-ID", id)

	start := time.Now()
	err := c.Next()
	fields := []zap.Field{
		zap.String("request_id", id),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.String("ip", c.IP()),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		objects.Log.Warn("request failed", append(fields, zap.Error(err))...)
		return err
	}
	objects.Log.Info("request", fields...)
	return nil
}

// NoCache keeps pages that carry form state out of shared caches.
func NoCache(c *fiber.Ctx) error {
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")
	return c.Next()
}
