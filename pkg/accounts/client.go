package accounts

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/serr"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/models"
)

const defaultTimeout = 5 * time.Second

// Client posts registrations to the remote account API.
type Client struct {
	Endpoint string
	Timeout  time.Duration
	Log      *zap.Logger
}

func NewClient(endpoint string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{Endpoint: endpoint, Timeout: timeout, Log: log}
}

// CreateAccount sends payload as JSON and returns the response status. Any
// transport failure, including an expired ctx, is returned as an error.
func (c *Client) CreateAccount(ctx context.Context, payload models.AccountPayload) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, serr.Wrap(err, "account request not sent")
	}
	timeout := c.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	start := time.Now()
	agent := fiber.Post(c.Endpoint)
	agent.JSON(payload)
	agent.Timeout(timeout)
	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		c.Log.Warn("account request failed",
			zap.String("endpoint", c.Endpoint),
			zap.Duration("elapsed", time.Since(start)),
			zap.Errors("errors", errs))
		return 0, serr.Wrap(errs[0], "account request failed")
	}
	c.Log.Info("account request completed",
		zap.String("endpoint", c.Endpoint),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)))
	return status, nil
}
