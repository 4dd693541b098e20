package core

import "context"

type WeatherProvider interface {
	Get(ctx context.Context, city string) Result[WeatherInfo]
}

type JokeProvider interface {
	Random(ctx context.Context) Result[Joke]
}

type SearchProvider interface {
	Query(ctx context.Context, query string, topN int) Result[[]SearchHit]
}
