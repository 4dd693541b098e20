package core

import "time"

type AppConfig interface {
	GetRuntimePath() string
	GetHTTPTimeout() time.Duration
	GetLocation() *time.Location
	GetSearchTopN() int
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetPollTimeout() time.Duration
	GetWebhookURL() string
	GetWebhookListen() string
	IsWebhook() bool
}

type WeatherConfig interface {
	GetWeatherAPIKey() string
	GetWeatherBaseURL() string
}

type JokeConfig interface {
	GetJokeBaseURL() string
}

type SearchConfig interface {
	GetGoogleAPIKey() string
	GetSearchEngineID() string
	GetSearchBaseURL() string
}
