package command

import (
	"context"

	"github.com/sandevgo/assistbot/internal/core"
)

const unknownCommandReply = "Sorry, I didn't understand that command. Use /help to see available commands."

type UnknownCommand struct {
	meta
}

func NewUnknownCommand() *UnknownCommand {
	return &UnknownCommand{meta{name: "unknown", description: "Fallback for unknown commands"}}
}

func (c *UnknownCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	return []core.OutboundMessage{core.Text(unknownCommandReply)}
}

// Echo replies with the received text unchanged.
type Echo struct {
	meta
}

func NewEcho() *Echo {
	return &Echo{meta{name: "echo", description: "Repeat plain text"}}
}

func (c *Echo) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	return []core.OutboundMessage{core.Text(req.Text)}
}
