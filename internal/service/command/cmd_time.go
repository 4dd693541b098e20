package command

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/assistbot/internal/core"
)

type TimeCommand struct {
	meta
	now func() time.Time
	loc *time.Location
}

func NewTimeCommand(loc *time.Location, now func() time.Time) *TimeCommand {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &TimeCommand{
		meta: meta{name: "time", description: "Get current time"},
		now:  now,
		loc:  loc,
	}
}

func (c *TimeCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	current := c.now().In(c.loc).Format(time.TimeOnly)
	return []core.OutboundMessage{core.Text(fmt.Sprintf("The current time is: %s", current))}
}
