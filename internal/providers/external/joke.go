package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

// Jokes fetches a random joke. Failure details are logged, never returned.
type Jokes struct {
	fetcher
	cfg core.JokeConfig
}

func NewJokes(cfg core.JokeConfig, timeout time.Duration) *Jokes {
	return &Jokes{
		fetcher: newFetcher(timeout),
		cfg:     cfg,
	}
}

func (j *Jokes) Random(ctx context.Context) core.Result[core.Joke] {
	joke, err := j.fetch(ctx)
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("joke fetch failed")
		return core.Fail[core.Joke](core.ErrUnavailable, "joke fetch failed")
	}
	return core.Ok(joke)
}

func (j *Jokes) fetch(ctx context.Context) (core.Joke, error) {
	resp, err := j.get(ctx, "joke", j.cfg.GetJokeBaseURL(), "/jokes/random", nil)
	if err != nil {
		return core.Joke{}, err
	}
	if !resp.ok() {
		return core.Joke{}, statusFailure[core.Joke](resp).Err()
	}

	var data struct {
		Setup     string `json:"setup"`
		Punchline string `json:"punchline"`
	}
	if err := json.Unmarshal(resp.body, &data); err != nil {
		return core.Joke{}, err
	}
	if data.Setup == "" || data.Punchline == "" {
		return core.Joke{}, &core.ProviderError{Kind: core.ErrMalformed, Message: "incomplete joke"}
	}
	return core.Joke{Setup: data.Setup, Punchline: data.Punchline}, nil
}
