package command

import (
	"context"
	"strings"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

type WeatherCommand struct {
	meta
	provider  core.WeatherProvider
	formatter *ResponseFormatter
}

func NewWeatherCommand(provider core.WeatherProvider) *WeatherCommand {
	return &WeatherCommand{
		meta: meta{
			name:        "weather",
			description: "Get weather information",
			usage:       "/weather <city>",
			minArgs:     1,
			argHint:     "a city name",
		},
		provider:  provider,
		formatter: NewResponseFormatter(),
	}
}

func (c *WeatherCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	city := strings.Join(req.Args, " ")

	res := c.provider.Get(ctx, city)
	if !res.IsOk() {
		log.FromCtx(ctx).Warn().
			Str("city", city).
			Stringer("kind", res.Err().Kind).
			Str("reason", res.Err().Message).
			Msg("weather lookup failed")
		return []core.OutboundMessage{core.Text(c.formatter.Failure("weather", city, res.Err()))}
	}

	return []core.OutboundMessage{core.Text(c.formatter.Weather(city, res.Value()))}
}
