package libs

import (
	"testing"
	"time"

	"github.com/oarkflow/signup/pkg/config"
	"github.com/oarkflow/signup/pkg/objects"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SIGNUP_ACCOUNTS_URL", "http://accounts.internal/api/users")
	t.Setenv("SIGNUP_REDIRECT_DELAY", "5s")
	t.Setenv("APP_HTTPS", "true")

	cfg, err := config.New(t.TempDir()+"/missing.env", false, nil)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	prev := objects.Config
	objects.Config = cfg
	t.Cleanup(func() { objects.Config = prev })
	config.Load()

	got := LoadConfig()
	if got.AccountsURL != "http://accounts.internal/api/users" {
		t.Fatalf("accounts url = %q", got.AccountsURL)
	}
	if got.RedirectDelay != 5*time.Second {
		t.Fatalf("redirect delay = %v", got.RedirectDelay)
	}
	if got.SuccessNoticeDelay != 2*time.Second {
		t.Fatalf("success notice delay = %v", got.SuccessNoticeDelay)
	}
	if !got.HTTPS {
		t.Fatal("https should be enabled")
	}
	if got.NotificationKey != "signup" || got.LoginPath != "/login" {
		t.Fatalf("config = %+v", got)
	}
}

func TestLoadConfigWithoutSource(t *testing.T) {
	prev := objects.Config
	objects.Config = nil
	t.Cleanup(func() { objects.Config = prev })

	if got := LoadConfig(); *got != *DefaultConfig() {
		t.Fatalf("config = %+v", got)
	}
}

func TestLoadedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := config.New(t.TempDir()+"/missing.env", false, nil)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	prev := objects.Config
	objects.Config = cfg
	t.Cleanup(func() { objects.Config = prev })
	config.Load()

	if got, want := LoadConfig(), DefaultConfig(); *got != *want {
		t.Fatalf("loaded = %+v\nwant = %+v", got, want)
	}
}
