package command

import (
	"time"

	"github.com/sandevgo/assistbot/internal/core"
)

type Providers struct {
	Weather core.WeatherProvider
	Jokes   core.JokeProvider
	Search  core.SearchProvider
}

// NewCommands builds the registry with every chat command, in menu order.
func NewCommands(cfg core.AppConfig, providers Providers) *Registry {
	r := NewRegistry()
	r.Register(NewStartCommand(r))
	r.Register(NewHelpCommand(r))
	r.Register(NewWeatherCommand(providers.Weather))
	r.Register(NewTimeCommand(cfg.GetLocation(), time.Now))
	r.Register(NewJokeCommand(providers.Jokes))
	r.Register(NewSearchCommand(providers.Search, cfg.GetSearchTopN()))
	return r
}
