package main

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/signup/pkg/config"
	"github.com/oarkflow/signup/pkg/objects"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.New(t.TempDir()+"/missing.env", false, nil)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	prev := objects.Config
	objects.Config = cfg
	t.Cleanup(func() { objects.Config = prev })
	config.Load()
	return cfg
}

func TestAppConfigIgnoresProxyHeaderByDefault(t *testing.T) {
	fc := appConfig(loadConfig(t))
	if fc.ProxyHeader != "" || fc.EnableTrustedProxyCheck {
		t.Fatalf("proxy settings = %q, %v", fc.ProxyHeader, fc.EnableTrustedProxyCheck)
	}
}

func TestAppConfigTrustsOnlyListedProxies(t *testing.T) {
	t.Setenv("APP_PROXY_HEADER", fiber.HeaderXForwardedFor)
	t.Setenv("APP_TRUSTED_PROXIES", "10.0.0.1, 10.0.1.0/24")

	fc := appConfig(loadConfig(t))
	if fc.ProxyHeader != fiber.HeaderXForwardedFor || !fc.EnableTrustedProxyCheck {
		t.Fatalf("proxy settings = %q, %v", fc.ProxyHeader, fc.EnableTrustedProxyCheck)
	}
	if len(fc.TrustedProxies) != 2 || fc.TrustedProxies[0] != "10.0.0.1" || fc.TrustedProxies[1] != "10.0.1.0/24" {
		t.Fatalf("trusted proxies = %v", fc.TrustedProxies)
	}
}
