package command

import (
	"context"
	"time"

	"github.com/sandevgo/assistbot/internal/core"
)

type fakeWeather struct {
	result core.Result[core.WeatherInfo]
	calls  []string
}

func (f *fakeWeather) Get(ctx context.Context, city string) core.Result[core.WeatherInfo] {
	f.calls = append(f.calls, city)
	return f.result
}

type fakeJokes struct {
	result core.Result[core.Joke]
	calls  int
}

func (f *fakeJokes) Random(ctx context.Context) core.Result[core.Joke] {
	f.calls++
	return f.result
}

type fakeSearch struct {
	result core.Result[[]core.SearchHit]
	calls  []string
	topN   int
}

func (f *fakeSearch) Query(ctx context.Context, query string, topN int) core.Result[[]core.SearchHit] {
	f.calls = append(f.calls, query)
	f.topN = topN
	return f.result
}

type fakeAppConfig struct{}

func (fakeAppConfig) GetRuntimePath() string        { return "/tmp" }
func (fakeAppConfig) GetHTTPTimeout() time.Duration { return time.Second }
func (fakeAppConfig) GetLocation() *time.Location   { return time.UTC }
func (fakeAppConfig) GetSearchTopN() int            { return 3 }

func bodies(msgs []core.OutboundMessage) []string {
	res := make([]string, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, m.Body)
	}
	return res
}
