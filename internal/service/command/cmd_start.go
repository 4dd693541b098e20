package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/assistbot/internal/core"
)

type lister interface {
	List() []core.Handler
}

type StartCommand struct {
	meta
	commands  lister
	formatter *ResponseFormatter
}

func NewStartCommand(commands lister) *StartCommand {
	return &StartCommand{
		meta:      meta{name: "start", description: "Start the conversation"},
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *StartCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	name := req.UserDisplayName
	if name == "" {
		name = "there"
	}

	msg := core.Markdown(fmt.Sprintf(
		"Hi %s! I'm your helpful assistant. Tap a button or use commands:\n\n%s",
		name,
		c.formatter.CommandList(c.commands.List()),
	))
	msg.Buttons = MainKeyboard()
	return []core.OutboundMessage{msg}
}

// MainKeyboard is the 2x2 inline keyboard attached to the greeting.
func MainKeyboard() [][]core.Button {
	return [][]core.Button{
		{
			{Label: "Weather", Action: core.ActionWeather},
			{Label: "Time", Action: core.ActionTime},
		},
		{
			{Label: "Joke", Action: core.ActionJoke},
			{Label: "Search", Action: core.ActionSearch},
		},
	}
}
