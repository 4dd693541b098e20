package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type sentMessage struct {
	to   tele.Recipient
	text string
	opts []interface{}
}

type fakeAPI struct {
	sent []sentMessage
	errs []error
}

func (f *fakeAPI) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.sent = append(f.sent, sentMessage{to: to, text: what.(string), opts: opts})
	return &tele.Message{}, nil
}

func fastRetrier() *retry.Retrier {
	return retry.NewRetrier(&retry.Config{MaxRetries: 2, BackoffFactor: 1, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond})
}

func TestSender_PlainIsVerbatim(t *testing.T) {
	api := &fakeAPI{}
	s := newSender(api, fastRetrier())

	err := s.Send(context.Background(), core.OutboundMessage{ChatID: 12, Body: "*not bold* <b>"})

	require.NoError(t, err)
	require.Len(t, api.sent, 1)
	assert.Equal(t, "12", api.sent[0].to.Recipient())
	assert.Equal(t, "*not bold* <b>", api.sent[0].text)
	assert.Empty(t, api.sent[0].opts)
}

func TestSender_MarkdownWithKeyboard(t *testing.T) {
	api := &fakeAPI{}
	s := newSender(api, fastRetrier())

	err := s.Send(context.Background(), core.OutboundMessage{
		ChatID:  1,
		Body:    "**Hi**",
		Format:  core.FormatMarkdown,
		Buttons: [][]core.Button{{{Label: "Time", Action: core.ActionTime}}},
	})

	require.NoError(t, err)
	require.Len(t, api.sent, 1)
	assert.Equal(t, "<strong>Hi</strong>", api.sent[0].text)
	require.Len(t, api.sent[0].opts, 2)
	assert.Equal(t, tele.ModeHTML, api.sent[0].opts[0])

	markup, ok := api.sent[0].opts[1].(*tele.ReplyMarkup)
	require.True(t, ok)
	assert.Equal(t, [][]tele.InlineButton{{{Text: "Time", Data: "time"}}}, markup.InlineKeyboard)
}

func TestSender_LongMessageSplitKeyboardOnLast(t *testing.T) {
	api := &fakeAPI{}
	s := newSender(api, fastRetrier())

	long := strings.Repeat(strings.Repeat("x", 99)+"\n", 100) // 10000 bytes
	err := s.Send(context.Background(), core.OutboundMessage{
		ChatID:  1,
		Body:    long,
		Buttons: [][]core.Button{{{Label: "Joke", Action: core.ActionJoke}}},
	})

	require.NoError(t, err)
	require.Len(t, api.sent, 3)
	for _, m := range api.sent {
		assert.LessOrEqual(t, len(m.text), maxTelegramMsgLen)
	}
	assert.Empty(t, api.sent[0].opts)
	assert.Len(t, api.sent[2].opts, 1)
}

func TestSender_RetriesFloodWaitOnly(t *testing.T) {
	t.Run("flood wait is retried", func(t *testing.T) {
		api := &fakeAPI{errs: []error{tele.FloodError{RetryAfter: 0}, nil}}
		s := newSender(api, fastRetrier())

		err := s.Send(context.Background(), core.OutboundMessage{ChatID: 1, Body: "hi"})

		require.NoError(t, err)
		assert.Len(t, api.sent, 1)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		boom := errors.New("chat not found")
		api := &fakeAPI{errs: []error{boom, nil}}
		s := newSender(api, fastRetrier())

		err := s.Send(context.Background(), core.OutboundMessage{ChatID: 1, Body: "hi"})

		require.ErrorIs(t, err, boom)
		assert.Empty(t, api.sent)
	})
}

func TestSender_SkipsEmptyBody(t *testing.T) {
	api := &fakeAPI{}
	s := newSender(api, fastRetrier())

	require.NoError(t, s.Send(context.Background(), core.OutboundMessage{ChatID: 1, Body: "   "}))
	assert.Empty(t, api.sent)
}

func TestSplitText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"split at newline", "aaaa\nbbbb", 6, []string{"aaaa", "bbbb"}},
		{"hard cut", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"cut moves back to rune start", "aжжж", 4, []string{"aж", "жж"}},
		{"rune wider than limit", "ж", 1, []string{"ж"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitText(tt.input, tt.maxLen))
		})
	}
}

func TestSender_LongCyrillicStaysValidUTF8(t *testing.T) {
	api := &fakeAPI{}
	s := newSender(api, fastRetrier())

	body := "a" + strings.Repeat("ж", 2500) // 5001 bytes, no newline
	require.NoError(t, s.Send(context.Background(), core.OutboundMessage{ChatID: 1, Body: body}))

	require.Len(t, api.sent, 2)
	var joined strings.Builder
	for i, m := range api.sent {
		assert.True(t, utf8.ValidString(m.text), "chunk %d is not valid UTF-8", i)
		assert.LessOrEqual(t, len(m.text), maxTelegramMsgLen)
		joined.WriteString(m.text)
	}
	assert.Equal(t, body, joined.String())
}
