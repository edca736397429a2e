package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/oarkflow/signup/pkg/objects"
)

type Config struct {
	k *koanf.Koanf
}

// New initializes a new config instance from an optional .env file and the
// process environment. When watchEnv is set, callback runs on every change
// to the .env file.
func New(envPath string, watchEnv bool, callback func()) (*Config, error) {
	k := koanf.New(".")
	app := &Config{k: k}
	f := file.Provider(envPath)
	if _, err := os.Stat(envPath); err == nil {
		if err := app.k.Load(f, dotenv.Parser()); err != nil {
			color.Red.Println("Error loading .env file: " + err.Error())
			return nil, err
		}
	} else {
		color.Yellow.Println("No .env file found at " + envPath)
		watchEnv = false
	}

	if err := app.k.Load(env.Provider("", ".", nil), nil); err != nil {
		color.Red.Println("Error loading environment variables: " + err.Error())
		return nil, err
	}
	if watchEnv {
		err := f.Watch(func(event any, err error) {
			if err != nil {
				objects.Log.Warn("env watch error", zap.Error(err))
				return
			}
			if callback != nil {
				callback()
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Env retrieves a config value from the environment with an optional default.
func (app *Config) Env(envName string, defaultValue ...any) any {
	value := app.k.Get(envName)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}
	return value
}

// Add adds a configuration to the application.
func (app *Config) Add(name string, configuration any) {
	if err := app.k.Set(name, configuration); err != nil {
		panic(err)
	}
}

func (app *Config) Get(path string, defaultValue ...any) any {
	value := app.k.Get(path)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return nil
	}
	return value
}

func (app *Config) GetString(path string, defaultValue ...any) string {
	value := app.Get(path, defaultValue...)
	if strVal, ok := value.(string); ok {
		return strVal
	}
	if value != nil {
		return fmt.Sprintf("%v", value)
	}
	if len(defaultValue) > 0 {
		return fmt.Sprintf("%v", defaultValue[0])
	}
	return ""
}

func (app *Config) GetInt(path string, defaultValue ...any) int {
	value := app.Get(path, defaultValue...)
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	if len(defaultValue) > 0 {
		if d, ok := defaultValue[0].(int); ok {
			return d
		}
	}
	return 0
}

func (app *Config) GetDuration(path string, defaultValue ...any) time.Duration {
	value := app.Get(path, defaultValue...)
	if duration, ok := value.(time.Duration); ok {
		return duration
	}
	if strVal, ok := value.(string); ok {
		if duration, err := time.ParseDuration(strVal); err == nil {
			return duration
		}
	}
	if len(defaultValue) > 0 {
		switch d := defaultValue[0].(type) {
		case time.Duration:
			return d
		case string:
			if duration, err := time.ParseDuration(d); err == nil {
				return duration
			}
		}
	}
	return 0
}

func (app *Config) GetBool(path string, defaultValue ...any) bool {
	value := app.Get(path, defaultValue...)
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	if len(defaultValue) > 0 {
		if d, ok := defaultValue[0].(bool); ok {
			return d
		}
	}
	return false
}

// GetStrings reads a list value. Strings are split on commas, which is how
// lists arrive from the environment.
func (app *Config) GetStrings(path string) []string {
	var out []string
	switch v := app.Get(path).(type) {
	case []string:
		out = v
	case []any:
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
	case string:
		out = strings.Split(v, ",")
	}
	var list []string
	for _, s := range out {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}
	return list
}
