// Package appconf holds the dashboard's runtime configuration.
package appconf

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps an -env flag value to an Environment. Unknown
// values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the dashboard.
type Config struct {
	Host         string `env:"DASH_HOST" envDefault:"127.0.0.1"`
	Port         int    `env:"DASH_PORT" envDefault:"8050"`
	EnvName      string `env:"DASH_ENV" envDefault:"development"`
	DataPath     string `env:"DASH_DATA_PATH" envDefault:"spacex_launch_dash.csv"`
	LogLevel     string `env:"DASH_LOG_LEVEL" envDefault:"info"`
	EChartsAsset string `env:"DASH_ECHARTS_ASSETS" envDefault:"https://go-echarts.github.io/go-echarts-assets/assets/"`

	Env Environment
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("data path is required")
	}
	return nil
}

// Addr is the host:port the HTTP server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
