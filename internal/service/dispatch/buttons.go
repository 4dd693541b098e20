package dispatch

import (
	"context"

	"github.com/sandevgo/assistbot/internal/core"
)

const (
	promptCity  = "Please enter a city name:"
	promptQuery = "Please enter your search query:"
)

// button resolves an inline keyboard press. Weather and search only prompt;
// the follow-up text is not bound to the command and gets echoed.
func (d *Dispatcher) button(ctx context.Context, u core.ButtonPress) []core.OutboundMessage {
	switch u.Action {
	case core.ActionWeather:
		return []core.OutboundMessage{core.Text(promptCity)}
	case core.ActionSearch:
		return []core.OutboundMessage{core.Text(promptQuery)}
	case core.ActionTime, core.ActionJoke:
		return d.resolve(ctx, core.TextCommand{Name: string(u.Action), ChatID: u.ChatID})
	}
	return nil
}
