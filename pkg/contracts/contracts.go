package contracts

import (
	"context"
	"time"

	"github.com/oarkflow/signup/pkg/models"
)

type Config interface {
	Env(envName string, defaultValue ...any) any
	Add(name string, configuration any)
	Get(path string, defaultValue ...any) any
	GetString(path string, defaultValue ...any) string
	GetInt(path string, defaultValue ...any) int
	GetDuration(path string, defaultValue ...any) time.Duration
	GetBool(path string, defaultValue ...any) bool
}

// AccountCreator submits a registration to the account API and reports the
// HTTP status it answered with. A non-nil error means no usable response.
type AccountCreator interface {
	CreateAccount(ctx context.Context, payload models.AccountPayload) (int, error)
}

type Notifier interface {
	Notify(n models.Notification)
}

type Navigator interface {
	Navigate(url string)
}

// Scheduler runs fn once after d. The returned func cancels it if it has not
// fired yet.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}
