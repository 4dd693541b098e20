package telegram

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/conv"
	"github.com/sandevgo/assistbot/pkg/log"
	"github.com/sandevgo/assistbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

// api is the part of *tele.Bot the sender needs.
type api interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// sender implements core.Sink on top of the Bot API.
type sender struct {
	api     api
	retrier *retry.Retrier
}

func newSender(api api, retrier *retry.Retrier) *sender {
	if retrier == nil {
		retrier = retry.NewDefaultRetrier()
	}
	return &sender{api: api, retrier: retrier}
}

func (s *sender) Send(ctx context.Context, msg core.OutboundMessage) error {
	logger := log.FromCtx(ctx)

	text := msg.Body
	var opts []interface{}
	if msg.Format == core.FormatMarkdown {
		text = strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(text)))
		opts = append(opts, tele.ModeHTML)
	}

	// Telegram rejects blank messages
	if strings.TrimSpace(text) == "" {
		logger.Info().Int64("chat_id", msg.ChatID).Msg("skipping blank reply")
		return nil
	}

	chunks := splitText(text, maxTelegramMsgLen)
	for i, chunk := range chunks {
		chunkOpts := opts
		if i == len(chunks)-1 && len(msg.Buttons) > 0 {
			chunkOpts = append(chunkOpts, inlineKeyboard(msg.Buttons))
		}

		err := s.retrier.DoWhen(ctx, floodWait, func() error {
			_, err := s.api.Send(tele.ChatID(msg.ChatID), chunk, chunkOpts...)
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram message")
			return err
		}
	}
	return nil
}

// floodWait retries only 429 responses, which Telegram did not deliver.
func floodWait(err error) (bool, time.Duration) {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return true, time.Duration(flood.RetryAfter) * time.Second
	}
	return false, 0
}

func inlineKeyboard(rows [][]core.Button) *tele.ReplyMarkup {
	keyboard := make([][]tele.InlineButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tele.InlineButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tele.InlineButton{Text: b.Label, Data: string(b.Action)})
		}
		keyboard = append(keyboard, buttons)
	}
	return &tele.ReplyMarkup{InlineKeyboard: keyboard}
}

// splitText splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitText(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}
		// never split a multi-byte character
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			_, cut = utf8.DecodeRuneInString(text)
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
