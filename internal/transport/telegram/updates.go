package telegram

import (
	"strings"

	"github.com/sandevgo/assistbot/internal/core"
	tele "gopkg.in/telebot.v3"
)

// fromMessage classifies a text message as a command or plain text.
func fromMessage(m *tele.Message) (core.Update, bool) {
	if m == nil || m.Chat == nil {
		return nil, false
	}

	var name string
	if m.Sender != nil {
		name = m.Sender.FirstName
	}
	return core.ParseText(m.Text, m.Chat.ID, name), true
}

// fromCallback maps an inline button press. Unknown payloads are rejected.
func fromCallback(cb *tele.Callback) (core.Update, bool) {
	if cb == nil {
		return nil, false
	}

	action, ok := core.ParseButtonAction(strings.TrimSpace(cb.Data))
	if !ok {
		return nil, false
	}

	var chatID int64
	switch {
	case cb.Message != nil && cb.Message.Chat != nil:
		chatID = cb.Message.Chat.ID
	case cb.Sender != nil:
		chatID = cb.Sender.ID
	default:
		return nil, false
	}

	return core.ButtonPress{Action: action, ChatID: chatID}, true
}
