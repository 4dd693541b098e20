package command

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherCommand(t *testing.T) {
	tests := []struct {
		name   string
		result core.Result[core.WeatherInfo]
		want   string
	}{
		{
			name: "success",
			result: core.Ok(core.WeatherInfo{
				Description: "light rain",
				TempC:       12.3,
				Humidity:    81,
				WindSpeed:   4.1,
			}),
			want: "Weather in New York:\nDescription: light rain\nTemperature: 12.3°C\nHumidity: 81%\nWind Speed: 4.1 m/s",
		},
		{
			name:   "not found names the city",
			result: core.Fail[core.WeatherInfo](core.ErrNotFound, "city unresolved"),
			want:   "Could not find weather information for New York",
		},
		{
			name:   "transport is generic",
			result: core.Fail[core.WeatherInfo](core.ErrTransport, "timeout"),
			want:   "Sorry, there was an error talking to the weather service.",
		},
		{
			name:   "malformed is generic",
			result: core.Fail[core.WeatherInfo](core.ErrMalformed, "bad json"),
			want:   "Sorry, there was an error talking to the weather service.",
		},
		{
			name:   "unavailable is generic",
			result: core.Fail[core.WeatherInfo](core.ErrUnavailable, "no key"),
			want:   "Sorry, there was an error talking to the weather service.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeWeather{result: tt.result}
			cmd := NewWeatherCommand(provider)

			msgs := cmd.Handle(context.Background(), core.Request{Args: []string{"New", "York"}})

			assert.Equal(t, []string{tt.want}, bodies(msgs))
			assert.Equal(t, []string{"New York"}, provider.calls)
		})
	}
}

func TestWeatherCommand_Usage(t *testing.T) {
	cmd := NewWeatherCommand(&fakeWeather{})

	assert.Equal(t, 1, cmd.MinArgs())
	assert.Equal(t, "Please provide a city name. Usage: /weather <city>", cmd.UsageHint())
}

func TestJokeCommand(t *testing.T) {
	t.Run("setup then punchline", func(t *testing.T) {
		cmd := NewJokeCommand(&fakeJokes{result: core.Ok(core.Joke{Setup: "Knock knock.", Punchline: "Who's there?"})})

		msgs := cmd.Handle(context.Background(), core.Request{})

		assert.Equal(t, []string{"Knock knock.", "Who's there?"}, bodies(msgs))
	})

	t.Run("failure is a single apology", func(t *testing.T) {
		cmd := NewJokeCommand(&fakeJokes{result: core.Fail[core.Joke](core.ErrUnavailable, "joke fetch failed")})

		msgs := cmd.Handle(context.Background(), core.Request{})

		assert.Equal(t, []string{jokeApology}, bodies(msgs))
	})
}

func TestSearchCommand(t *testing.T) {
	hits := []core.SearchHit{
		{Title: "A", Link: "https://a", Snippet: "first"},
		{Title: "B", Link: "https://b", Snippet: "second"},
		{Title: "C", Link: "https://c", Snippet: "third"},
	}

	t.Run("header then hits in order", func(t *testing.T) {
		provider := &fakeSearch{result: core.Ok(hits)}
		cmd := NewSearchCommand(provider, 3)

		msgs := cmd.Handle(context.Background(), core.Request{Args: []string{"cute", "cats"}})

		assert.Equal(t, []string{
			searchHeader,
			"A\nhttps://a\nfirst",
			"B\nhttps://b\nsecond",
			"C\nhttps://c\nthird",
		}, bodies(msgs))
		assert.Equal(t, []string{"cute cats"}, provider.calls)
		assert.Equal(t, 3, provider.topN)
	})

	t.Run("no results is not an error", func(t *testing.T) {
		cmd := NewSearchCommand(&fakeSearch{result: core.Ok([]core.SearchHit{})}, 3)

		msgs := cmd.Handle(context.Background(), core.Request{Args: []string{"qwzx"}})

		assert.Equal(t, []string{searchNoResults}, bodies(msgs))
	})

	t.Run("failure is generic", func(t *testing.T) {
		cmd := NewSearchCommand(&fakeSearch{result: core.Fail[[]core.SearchHit](core.ErrTransport, "HTTP 500")}, 3)

		msgs := cmd.Handle(context.Background(), core.Request{Args: []string{"cats"}})

		assert.Equal(t, []string{"Sorry, there was an error talking to the search service."}, bodies(msgs))
	})
}

func TestTimeCommand(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 13, 5, 9, 0, time.UTC)
	cmd := NewTimeCommand(time.UTC, func() time.Time { return fixed })

	msgs := cmd.Handle(context.Background(), core.Request{})

	assert.Equal(t, []string{"The current time is: 13:05:09"}, bodies(msgs))
	assert.Equal(t, 0, cmd.MinArgs())
}

func TestStartCommand(t *testing.T) {
	r := NewCommands(fakeAppConfig{}, Providers{Weather: &fakeWeather{}, Jokes: &fakeJokes{}, Search: &fakeSearch{}})
	start, ok := r.Lookup("start")
	require.True(t, ok)

	msgs := start.Handle(context.Background(), core.Request{UserDisplayName: "Ada"})

	require.Len(t, msgs, 1)
	assert.Equal(t, core.FormatMarkdown, msgs[0].Format)
	assert.Contains(t, msgs[0].Body, "Hi Ada! I'm your helpful assistant.")
	assert.Contains(t, msgs[0].Body, "/weather `<city>` - Get weather information")
	assert.Contains(t, msgs[0].Body, "/joke - Get a random joke")
	assert.Equal(t, MainKeyboard(), msgs[0].Buttons)
}

func TestHelpCommand(t *testing.T) {
	r := NewCommands(fakeAppConfig{}, Providers{Weather: &fakeWeather{}, Jokes: &fakeJokes{}, Search: &fakeSearch{}})
	help, ok := r.Lookup("help")
	require.True(t, ok)

	msgs := help.Handle(context.Background(), core.Request{})

	require.Len(t, msgs, 1)
	assert.Equal(t, "Here are the commands I can help you with:\n\n"+
		"/start - Start the conversation\n"+
		"/help - Show available commands\n"+
		"/weather `<city>` - Get weather information\n"+
		"/time - Get current time\n"+
		"/joke - Get a random joke\n"+
		"/search `<query>` - Search the web\n", msgs[0].Body)
	assert.Empty(t, msgs[0].Buttons)
}
