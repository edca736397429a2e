package config

import (
	"time"

	"github.com/oarkflow/signup/pkg/objects"
)

// Defaults used when neither the .env file nor the environment sets a key.
const (
	DefaultAppName            = "Living History"
	DefaultEnv                = "development"
	DefaultAddr               = ":3000"
	DefaultAccountsURL        = "http://localhost:8080/api/users"
	DefaultRequestTimeout     = 5 * time.Second
	DefaultSuccessNoticeDelay = 2 * time.Second
	DefaultRedirectDelay      = 3 * time.Second
	DefaultNotificationKey    = "signup"
	DefaultLoginPath          = "/login"
	DefaultTermsCookie        = "signup_terms"
	DefaultRateLimitRequests  = 30
	DefaultRateLimitWindow    = time.Minute
)

// Load registers the application defaults, each overridable from the
// environment, on objects.Config.
func Load() {
	cfg := objects.Config
	cfg.Add("app", map[string]any{
		"name":            cfg.Env("APP_NAME", DefaultAppName),
		"env":             cfg.Env("APP_ENV", DefaultEnv),
		"https":           cfg.Env("APP_HTTPS", false),
		"addr":            cfg.Env("APP_ADDR", DefaultAddr),
		"proxy_header":    cfg.Env("APP_PROXY_HEADER", ""),
		"trusted_proxies": cfg.Env("APP_TRUSTED_PROXIES", ""),
	})
	cfg.Add("signup", map[string]any{
		"accounts_url":         cfg.Env("SIGNUP_ACCOUNTS_URL", DefaultAccountsURL),
		"request_timeout":      cfg.Env("SIGNUP_REQUEST_TIMEOUT", DefaultRequestTimeout),
		"success_notice_delay": cfg.Env("SIGNUP_SUCCESS_NOTICE_DELAY", DefaultSuccessNoticeDelay),
		"redirect_delay":       cfg.Env("SIGNUP_REDIRECT_DELAY", DefaultRedirectDelay),
		"notification_key":     cfg.Env("SIGNUP_NOTIFICATION_KEY", DefaultNotificationKey),
		"login_path":           cfg.Env("SIGNUP_LOGIN_PATH", DefaultLoginPath),
		"terms_cookie":         cfg.Env("SIGNUP_TERMS_COOKIE", DefaultTermsCookie),
		"rate_limit_requests":  cfg.Env("SIGNUP_RATE_LIMIT_REQUESTS", DefaultRateLimitRequests),
		"rate_limit_window":    cfg.Env("SIGNUP_RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
	})
}
