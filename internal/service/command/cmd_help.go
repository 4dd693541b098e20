package command

import (
	"context"

	"github.com/sandevgo/assistbot/internal/core"
)

type HelpCommand struct {
	meta
	commands  lister
	formatter *ResponseFormatter
}

func NewHelpCommand(commands lister) *HelpCommand {
	return &HelpCommand{
		meta:      meta{name: "help", description: "Show available commands"},
		commands:  commands,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	return []core.OutboundMessage{
		core.Markdown("Here are the commands I can help you with:\n\n" + c.formatter.CommandList(c.commands.List())),
	}
}
