package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	deliveryPolling = "Long polling"
	deliveryWebhook = "Webhook"
)

// DeliveryStep selects how the bot receives updates from Telegram
type DeliveryStep struct {
	choices []string
	cursor  int
}

func NewDeliveryStep() Step {
	return &DeliveryStep{
		choices: []string{deliveryPolling, deliveryWebhook},
	}
}

func (s *DeliveryStep) Init() tea.Cmd {
	return nil
}

func (s *DeliveryStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Webhook = s.choices[s.cursor] == deliveryWebhook
			return nil, nil
		}
	}
	return s, nil
}

func (s *DeliveryStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("How should the bot receive updates?\n\n")
	for i, choice := range s.choices {
		if s.cursor == i {
			b.WriteString(selStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
