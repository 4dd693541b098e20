package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sandevgo/assistbot/internal/core"
)

// Weather talks to the OpenWeatherMap current weather endpoint.
type Weather struct {
	fetcher
	cfg core.WeatherConfig
}

func NewWeather(cfg core.WeatherConfig, timeout time.Duration) *Weather {
	return &Weather{
		fetcher: newFetcher(timeout),
		cfg:     cfg,
	}
}

// statusCode accepts both `"cod": 200` and `"cod": "404"`.
type statusCode int

func (c *statusCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid cod %s", b)
	}
	*c = statusCode(n)
	return nil
}

type weatherResponse struct {
	Cod     *statusCode `json:"cod"`
	Message string      `json:"message"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
}

func (w *Weather) Get(ctx context.Context, city string) core.Result[core.WeatherInfo] {
	if w.cfg.GetWeatherAPIKey() == "" {
		return core.Fail[core.WeatherInfo](core.ErrUnavailable, "weather api key not configured")
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", w.cfg.GetWeatherAPIKey())
	params.Set("units", "metric")

	resp, err := w.get(ctx, "weather", w.cfg.GetWeatherBaseURL(), "/data/2.5/weather", params)
	if err != nil {
		return transportFailure[core.WeatherInfo](err)
	}

	var data weatherResponse
	if err := json.Unmarshal(resp.body, &data); err != nil || data.Cod == nil {
		if !resp.ok() {
			return statusFailure[core.WeatherInfo](resp)
		}
		if err == nil {
			err = fmt.Errorf("missing cod")
		}
		return core.Fail[core.WeatherInfo](core.ErrMalformed, "invalid weather response: %v", err)
	}

	if *data.Cod != 200 {
		return core.Fail[core.WeatherInfo](core.ErrNotFound, "city unresolved")
	}

	return parseWeather(data)
}

func parseWeather(data weatherResponse) core.Result[core.WeatherInfo] {
	switch {
	case len(data.Weather) == 0:
		return core.Fail[core.WeatherInfo](core.ErrMalformed, "missing weather description")
	case data.Main == nil || data.Main.Temp == nil || data.Main.Humidity == nil:
		return core.Fail[core.WeatherInfo](core.ErrMalformed, "missing main readings")
	case data.Wind == nil || data.Wind.Speed == nil:
		return core.Fail[core.WeatherInfo](core.ErrMalformed, "missing wind speed")
	}

	return core.Ok(core.WeatherInfo{
		Description: data.Weather[0].Description,
		TempC:       *data.Main.Temp,
		Humidity:    *data.Main.Humidity,
		WindSpeed:   *data.Wind.Speed,
	})
}
