package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/color"
	"go.uber.org/zap"

	signup "github.com/oarkflow/signup"
	"github.com/oarkflow/signup/pkg/config"
	"github.com/oarkflow/signup/pkg/objects"
)

func main() {
	cfg, err := config.New(".env", true, nil)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	objects.Config = cfg
	config.Load()

	logger, err := newLogger(cfg.GetString("app.env"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	objects.Log = logger
	objects.Layout = "layouts/main"

	plugin := signup.NewPlugin(signup.WithLogger(logger))
	app := fiber.New(appConfig(cfg))
	plugin.App = app
	plugin.Register()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	addr := cfg.GetString("app.addr", ":3000")
	color.Green.Println("Signup service listening on " + addr)
	if err := app.Listen(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
	_ = plugin.Close()
}

// appConfig builds the fiber settings. A proxy header is only believed when
// the request comes from one of app.trusted_proxies, so clients cannot pick
// their own address by sending it.
func appConfig(cfg *config.Config) fiber.Config {
	fc := fiber.Config{
		AppName:     cfg.GetString("app.name"),
		Views:       objects.ViewEngine,
		ViewsLayout: objects.Layout,
	}
	if header := cfg.GetString("app.proxy_header"); header != "" {
		fc.ProxyHeader = header
		fc.EnableTrustedProxyCheck = true
		fc.TrustedProxies = cfg.GetStrings("app.trusted_proxies")
	}
	return fc
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
