package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/assistbot/pkg/log"
)

// ProvidersConfig holds the credentials and endpoints of the external data providers.
// Keys are optional here: a missing key only disables the command that needs it.
type ProvidersConfig struct {
	WeatherAPIKey  string `env:"WEATHER_API_KEY"`
	WeatherBaseURL string `env:"WEATHER_BASE_URL" envDefault:"http://api.openweathermap.org"`

	JokeBaseURL string `env:"JOKE_BASE_URL" envDefault:"https://official-joke-api.appspot.com"`

	GoogleAPIKey   string `env:"GOOGLE_API_KEY"`
	SearchEngineID string `env:"GOOGLE_CSE_ID"`
	SearchBaseURL  string `env:"SEARCH_BASE_URL" envDefault:"https://www.googleapis.com"`
}

func ParseProvidersConfig() (*ProvidersConfig, error) {
	c := &ProvidersConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func NewProvidersConfig(ctx context.Context) *ProvidersConfig {
	c, err := ParseProvidersConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Providers config")
	}

	logger := log.FromCtx(ctx)
	if c.WeatherAPIKey == "" {
		logger.Warn().Msg("WEATHER_API_KEY is not set, /weather will reply with an error")
	}
	if c.GoogleAPIKey == "" || c.SearchEngineID == "" {
		logger.Warn().Msg("GOOGLE_API_KEY or GOOGLE_CSE_ID is not set, /search will reply with an error")
	}
	return c
}

func (c ProvidersConfig) GetWeatherAPIKey() string  { return c.WeatherAPIKey }
func (c ProvidersConfig) GetWeatherBaseURL() string { return c.WeatherBaseURL }
func (c ProvidersConfig) GetJokeBaseURL() string    { return c.JokeBaseURL }
func (c ProvidersConfig) GetGoogleAPIKey() string   { return c.GoogleAPIKey }
func (c ProvidersConfig) GetSearchEngineID() string { return c.SearchEngineID }
func (c ProvidersConfig) GetSearchBaseURL() string  { return c.SearchBaseURL }
