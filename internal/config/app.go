package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/assistbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"ASSIST_RUNTIME_PATH" envDefault:".assistbot"`

	// Provider calls
	HTTPTimeout time.Duration `env:"ASSIST_HTTP_TIMEOUT" envDefault:"10s"`
	SearchTopN  int           `env:"ASSIST_SEARCH_TOP_N" envDefault:"3"`

	// Zone used by /time. "Local" keeps the host zone.
	Timezone string `env:"ASSIST_TIMEZONE" envDefault:"Local"`

	location *time.Location
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ASSIST_TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc

	if c.SearchTopN <= 0 {
		return nil, fmt.Errorf("ASSIST_SEARCH_TOP_N must be positive, got %d", c.SearchTopN)
	}
	if c.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("ASSIST_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return c, nil
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	if filepath.IsAbs(c.RuntimePath) {
		return c.RuntimePath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, c.RuntimePath)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.GetRuntimePath(), ".env")
}

func (c AppConfig) GetHTTPTimeout() time.Duration {
	return c.HTTPTimeout
}

func (c AppConfig) GetLocation() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c AppConfig) GetSearchTopN() int {
	return c.SearchTopN
}
