// Package signup drives the account registration form: the terms gate,
// field validation, the call to the account API and the user feedback that
// follows it.
package signup

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/contracts"
	"github.com/oarkflow/signup/pkg/models"
	"github.com/oarkflow/signup/pkg/notify"
	"github.com/oarkflow/signup/pkg/validation"
)

type Options struct {
	NotificationKey    string
	LoginPath          string
	SuccessNoticeDelay time.Duration
	RedirectDelay      time.Duration
	MessageDuration    time.Duration
	InfoDuration       time.Duration
	Log                *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		NotificationKey:    "signup",
		LoginPath:          "/login",
		SuccessNoticeDelay: 2 * time.Second,
		RedirectDelay:      3 * time.Second,
		MessageDuration:    2 * time.Second,
		InfoDuration:       time.Second,
		Log:                zap.NewNop(),
	}
}

// Result describes how a submission ended. Errors is set only when the
// registration was rejected before reaching the account API.
type Result struct {
	State  State             `json:"state"`
	Status int               `json:"status,omitempty"`
	Errors validation.Errors `json:"errors,omitempty"`
}

type Controller struct {
	accounts  contracts.AccountCreator
	notifier  contracts.Notifier
	navigator contracts.Navigator
	scheduler contracts.Scheduler
	opts      Options

	mu      sync.Mutex
	state   State
	terms   models.Terms
	pending []func()
	closed  bool
}

func New(accounts contracts.AccountCreator, notifier contracts.Notifier, navigator contracts.Navigator, scheduler contracts.Scheduler, opts Options) *Controller {
	def := DefaultOptions()
	if opts.NotificationKey == "" {
		opts.NotificationKey = def.NotificationKey
	}
	if opts.LoginPath == "" {
		opts.LoginPath = def.LoginPath
	}
	if opts.MessageDuration == 0 {
		opts.MessageDuration = def.MessageDuration
	}
	if opts.InfoDuration == 0 {
		opts.InfoDuration = def.InfoDuration
	}
	if opts.Log == nil {
		opts.Log = def.Log
	}
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	return &Controller{
		accounts:  accounts,
		notifier:  notifier,
		navigator: navigator,
		scheduler: scheduler,
		opts:      opts,
		state:     StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Submit validates r and, when it passes, sends it to the account API and
// reports the outcome through the notifier. On success the info notice and
// the redirect to the login page are scheduled; nothing is retried.
func (c *Controller) Submit(ctx context.Context, r models.Registration) (Result, error) {
	c.mu.Lock()
	r.Agreement = c.terms.Accepted && !c.terms.CheckboxDisabled
	c.mu.Unlock()

	if errs := validation.Validate(r); errs != nil {
		c.setState(StateIdle)
		return Result{State: StateIdle, Errors: errs}, nil
	}

	key := c.opts.NotificationKey
	c.setState(StateSubmitting)
	c.notifier.Notify(notify.Loading(key, MsgLoading))

	status, err := c.accounts.CreateAccount(ctx, r.Payload())
	if err != nil {
		c.opts.Log.Warn("signup request failed", zap.String("username", r.Username), zap.Error(err))
		c.setState(StateNetworkError)
		c.notifier.Notify(notify.Error(key, MsgRetry, c.opts.MessageDuration))
		return Result{State: StateNetworkError}, err
	}

	res := Result{Status: status}
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		res.State = StateSuccess
		c.setState(StateSuccess)
		c.notifier.Notify(notify.Success(key, MsgSuccess, c.opts.MessageDuration))
		c.schedule(c.opts.SuccessNoticeDelay, func() {
			c.notifier.Notify(notify.Info(key, MsgRedirect, c.opts.InfoDuration))
		})
		target := c.LoginURL(r.Username)
		c.schedule(c.opts.RedirectDelay, func() {
			c.setState(StateRedirecting)
			c.navigator.Navigate(target)
		})
	case status == http.StatusBadRequest:
		res.State = StateDuplicate
		c.setState(StateDuplicate)
		c.notifier.Notify(notify.Error(key, MsgDuplicate, c.opts.MessageDuration))
	case status == http.StatusInternalServerError:
		res.State = StateServerError
		c.setState(StateServerError)
		c.notifier.Notify(notify.Error(key, MsgServer, c.opts.MessageDuration))
	default:
		res.State = StateUnexpectedError
		c.setState(StateUnexpectedError)
		c.notifier.Notify(notify.Error(key, MsgRetry, c.opts.MessageDuration))
	}
	c.opts.Log.Info("signup submitted",
		zap.String("username", r.Username),
		zap.Int("status", status),
		zap.String("state", string(res.State)))
	return res, nil
}

// LoginURL is the page a successful signup lands on, carrying the username.
func (c *Controller) LoginURL(username string) string {
	return c.opts.LoginPath + "?" + url.Values{"value": {username}}.Encode()
}

func (c *Controller) schedule(d time.Duration, fn func()) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	cancel := c.scheduler.After(d, func() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if !closed {
			fn()
		}
	})

	c.mu.Lock()
	c.pending = append(c.pending, cancel)
	c.mu.Unlock()
}

// Close cancels any notice or redirect still waiting to fire.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, cancel := range pending {
		cancel()
	}
}
