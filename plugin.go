package signup

import (
	"embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/accounts"
	"github.com/oarkflow/signup/pkg/contracts"
	"github.com/oarkflow/signup/pkg/http/routes"
	"github.com/oarkflow/signup/pkg/libs"
	"github.com/oarkflow/signup/pkg/objects"
	"github.com/oarkflow/signup/pkg/utils"
)

//go:embed signup
var Assets embed.FS

type Plugin struct {
	App      *fiber.App
	Prefix   string
	Assets   embed.FS
	Accounts contracts.AccountCreator
	Log      *zap.Logger
}

type Option func(*Plugin)

func WithPrefix(prefix string) Option {
	return func(p *Plugin) {
		p.Prefix = prefix
	}
}

func WithApp(app *fiber.App) Option {
	return func(p *Plugin) {
		p.App = app
	}
}

// WithAccounts replaces the HTTP account client built from configuration.
func WithAccounts(accounts contracts.AccountCreator) Option {
	return func(p *Plugin) {
		p.Accounts = accounts
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(p *Plugin) {
		p.Log = log
	}
}

func (p *Plugin) Register() {
	cfg := libs.LoadConfig()
	objects.Prefix = p.Prefix
	if p.Log != nil {
		objects.Log = p.Log
	}
	if p.Accounts != nil {
		objects.Accounts = p.Accounts
	} else {
		objects.Accounts = accounts.NewClient(cfg.AccountsURL, cfg.RequestTimeout, objects.Log)
	}
	objects.Log.Info("signup plugin registered",
		zap.String("prefix", p.Prefix),
		zap.String("accounts_url", cfg.AccountsURL))
	if p.App != nil {
		routes.Setup(p.Prefix, p.App)
	}
}

func (p *Plugin) Name() string {
	return "Signup"
}

func (p *Plugin) Close() error {
	return objects.Log.Sync()
}

// NewViewEngine builds the template engine over the embedded views.
func NewViewEngine(reload bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(Assets), ".html")
	engine.Reload(reload)
	engine.AddFuncMap(map[string]any{
		"uris": func() map[string]string {
			return utils.GetURIs()
		},
		"json": func(v any) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
		"seconds": func(d time.Duration) int64 {
			return int64(d / time.Second)
		},
		"ms": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
	})
	return engine
}

func NewPlugin(opts ...Option) *Plugin {
	objects.ViewEngine = NewViewEngine(objects.Config != nil && objects.Config.GetString("app.env") == "development")
	if objects.Layout == "" {
		objects.Layout = "layouts/main"
	}
	plugin := &Plugin{
		Prefix: "/",
		Assets: Assets,
	}
	for _, opt := range opts {
		opt(plugin)
	}
	if plugin.Prefix == "" {
		plugin.Prefix = "/"
	}
	return plugin
}
