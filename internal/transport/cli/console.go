package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

// consoleChatID is the chat id used for every update typed in the console.
const consoleChatID int64 = 1

const buttonPrefix = "!"

type lineReader interface {
	Readline() (string, error)
}

// Console is a local chat transport: one terminal, one chat.
// Lines go through the same dispatcher as Telegram updates.
type Console struct {
	dispatcher  core.Dispatcher
	displayName string
	rl          *readline.Instance
}

func NewConsole(dispatcher core.Dispatcher, runtimePath, displayName string) (*Console, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Console{
		dispatcher:  dispatcher,
		displayName: displayName,
		rl:          rl,
	}, nil
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("console chat started. Type 'exit' to quit, '!time' to press a button.")
	return c.run(ctx, c.rl, c.rl.Stdout())
}

func (c *Console) run(ctx context.Context, in lineReader, out io.Writer) error {
	logger := log.FromCtx(ctx)
	sink := &writerSink{out: out}

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		// trimmed only to recognise control input, plain text is echoed as typed
		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" {
			return nil
		}
		if trimmed == "" {
			continue
		}

		update, ok := c.parse(line)
		if !ok {
			fmt.Fprintf(out, "Unknown button %q\n", strings.TrimPrefix(trimmed, buttonPrefix))
			continue
		}

		if err := c.dispatcher.Dispatch(ctx, update, sink); err != nil {
			logger.Error().Err(err).Msg("failed to print replies")
		}
	}
}

// parse maps "!joke" to a button press and anything else to a command or plain text.
func (c *Console) parse(line string) (core.Update, bool) {
	if raw, ok := strings.CutPrefix(strings.TrimSpace(line), buttonPrefix); ok {
		action, ok := core.ParseButtonAction(raw)
		if !ok {
			return nil, false
		}
		return core.ButtonPress{Action: action, ChatID: consoleChatID}, true
	}
	return core.ParseText(line, consoleChatID, c.displayName), true
}

func (c *Console) Shutdown(ctx context.Context) error {
	if c.rl != nil {
		return c.rl.Close()
	}
	return nil
}

// writerSink prints replies as plain text. Buttons are listed under the message.
type writerSink struct {
	out io.Writer
}

func (s *writerSink) Send(ctx context.Context, msg core.OutboundMessage) error {
	if _, err := fmt.Fprintln(s.out, msg.Body); err != nil {
		return err
	}

	for _, row := range msg.Buttons {
		labels := make([]string, 0, len(row))
		for _, b := range row {
			labels = append(labels, fmt.Sprintf("[%s %s%s]", b.Label, buttonPrefix, b.Action))
		}
		if _, err := fmt.Fprintln(s.out, strings.Join(labels, " ")); err != nil {
			return err
		}
	}
	return nil
}
