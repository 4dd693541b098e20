package command

import (
	"context"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

const jokeApology = "Sorry, couldn't fetch a joke right now."

type JokeCommand struct {
	meta
	provider core.JokeProvider
}

func NewJokeCommand(provider core.JokeProvider) *JokeCommand {
	return &JokeCommand{
		meta:     meta{name: "joke", description: "Get a random joke"},
		provider: provider,
	}
}

// Handle sends the setup and the punchline as two separate messages.
func (c *JokeCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	res := c.provider.Random(ctx)
	if !res.IsOk() {
		log.FromCtx(ctx).Warn().Str("reason", res.Err().Message).Msg("joke lookup failed")
		return []core.OutboundMessage{core.Text(jokeApology)}
	}

	joke := res.Value()
	return []core.OutboundMessage{
		core.Text(joke.Setup),
		core.Text(joke.Punchline),
	}
}
