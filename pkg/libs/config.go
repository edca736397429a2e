package libs

import (
	"time"

	"github.com/oarkflow/signup/pkg/config"
	"github.com/oarkflow/signup/pkg/objects"
)

type Config struct {
	AppName            string
	AccountsURL        string
	RequestTimeout     time.Duration
	SuccessNoticeDelay time.Duration
	RedirectDelay      time.Duration
	NotificationKey    string
	LoginPath          string
	TermsCookie        string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	HTTPS              bool
	Env                string
}

func DefaultConfig() *Config {
	return &Config{
		AppName:            config.DefaultAppName,
		AccountsURL:        config.DefaultAccountsURL,
		RequestTimeout:     config.DefaultRequestTimeout,
		SuccessNoticeDelay: config.DefaultSuccessNoticeDelay,
		RedirectDelay:      config.DefaultRedirectDelay,
		NotificationKey:    config.DefaultNotificationKey,
		LoginPath:          config.DefaultLoginPath,
		TermsCookie:        config.DefaultTermsCookie,
		RateLimitRequests:  config.DefaultRateLimitRequests,
		RateLimitWindow:    config.DefaultRateLimitWindow,
		Env:                config.DefaultEnv,
	}
}

// --- Configuration Functions ---
func LoadConfig() *Config {
	def := DefaultConfig()
	cfg := objects.Config
	if cfg == nil {
		return def
	}
	return &Config{
		AppName:            cfg.GetString("app.name", def.AppName),
		AccountsURL:        cfg.GetString("signup.accounts_url", def.AccountsURL),
		RequestTimeout:     cfg.GetDuration("signup.request_timeout", def.RequestTimeout),
		SuccessNoticeDelay: cfg.GetDuration("signup.success_notice_delay", def.SuccessNoticeDelay),
		RedirectDelay:      cfg.GetDuration("signup.redirect_delay", def.RedirectDelay),
		NotificationKey:    cfg.GetString("signup.notification_key", def.NotificationKey),
		LoginPath:          cfg.GetString("signup.login_path", def.LoginPath),
		TermsCookie:        cfg.GetString("signup.terms_cookie", def.TermsCookie),
		RateLimitRequests:  cfg.GetInt("signup.rate_limit_requests", def.RateLimitRequests),
		RateLimitWindow:    cfg.GetDuration("signup.rate_limit_window", def.RateLimitWindow),
		HTTPS:              cfg.GetBool("app.https"),
		Env:                cfg.GetString("app.env", def.Env),
	}
}
