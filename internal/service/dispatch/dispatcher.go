package dispatch

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

const internalErrorReply = "Sorry, something went wrong while handling your request."

// Dispatcher routes one inbound update to exactly one handler and sends its replies.
// It keeps no state between updates, so concurrent calls are safe.
type Dispatcher struct {
	registry core.Registry
}

func New(registry core.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

func (d *Dispatcher) Dispatch(ctx context.Context, update core.Update, sink core.Sink) error {
	ctx = log.WithFields(ctx, map[string]any{
		"chat_id":    update.Chat(),
		"request_id": newRequestID(),
	})

	msgs := d.resolve(ctx, update)
	for i, msg := range msgs {
		msg.ChatID = update.Chat()
		if err := sink.Send(ctx, msg); err != nil {
			return fmt.Errorf("failed to send reply %d of %d: %w", i+1, len(msgs), err)
		}
	}
	return nil
}

func (d *Dispatcher) resolve(ctx context.Context, update core.Update) []core.OutboundMessage {
	logger := log.FromCtx(ctx)

	switch u := update.(type) {
	case core.TextCommand:
		h, ok := d.registry.Lookup(u.Name)
		if !ok {
			logger.Debug().Str("kind", "command").Str("command", u.Name).Msg("unknown command")
			return d.run(ctx, d.registry.UnknownCommand(), core.Request{ChatID: u.ChatID, Args: u.Args})
		}

		logger.Debug().Str("kind", "command").Str("command", u.Name).Int("args", len(u.Args)).Msg("dispatching")
		if len(u.Args) < h.MinArgs() {
			return []core.OutboundMessage{core.Text(h.UsageHint())}
		}
		return d.run(ctx, h, core.Request{
			ChatID:          u.ChatID,
			Args:            u.Args,
			UserDisplayName: u.UserDisplayName,
		})

	case core.PlainText:
		logger.Debug().Str("kind", "text").Msg("dispatching")
		return d.run(ctx, d.registry.PlainText(), core.Request{ChatID: u.ChatID, Text: u.Text})

	case core.ButtonPress:
		logger.Debug().Str("kind", "button").Str("action", string(u.Action)).Msg("dispatching")
		return d.button(ctx, u)
	}

	logger.Warn().Msgf("unsupported update %T", update)
	return nil
}

// newRequestID tags every log line of one update.
func newRequestID() string {
	return "req_" + uuid.New().String()[:8]
}

// run invokes h, turning a panic into an apology so the user still gets a reply.
func (d *Dispatcher) run(ctx context.Context, h core.Handler, req core.Request) (msgs []core.OutboundMessage) {
	defer func() {
		if r := recover(); r != nil {
			log.FromCtx(ctx).Error().
				Str("handler", h.Name()).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			msgs = []core.OutboundMessage{core.Text(internalErrorReply)}
		}
	}()

	return h.Handle(ctx, req)
}
