package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects a single value into the install state.
type InputStep struct {
	input    textinput.Model
	title    string
	optional bool
	validate func(string) error
	store    func(state *InstallState, value string)
	skip     func(state *InstallState) bool
	err      error
}

type inputOption func(*InputStep)

func secret() inputOption {
	return func(s *InputStep) {
		s.input.EchoMode = textinput.EchoPassword
		s.input.EchoCharacter = '•'
	}
}

func optional() inputOption {
	return func(s *InputStep) { s.optional = true }
}

func validated(fn func(string) error) inputOption {
	return func(s *InputStep) { s.validate = fn }
}

func skipWhen(fn func(state *InstallState) bool) inputOption {
	return func(s *InputStep) { s.skip = fn }
}

func newInputStep(title, placeholder string, store func(*InstallState, string), opts ...inputOption) *InputStep {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder

	s := &InputStep{input: ti, title: title, store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) Skip(state *InstallState) bool {
	return s.skip != nil && s.skip(state)
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		value := strings.TrimSpace(s.input.Value())
		if err := s.check(value); err != nil {
			s.err = err
			return s, nil
		}
		s.store(state, value)
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InputStep) check(value string) error {
	if value == "" {
		if s.optional {
			return nil
		}
		return fmt.Errorf("a value is required")
	}
	if s.validate != nil {
		return s.validate(value)
	}
	return nil
}

func (s *InputStep) View(state *InstallState) string {
	hint := ""
	if s.optional {
		hint = " (optional - press Enter to skip)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Enter your %s%s:\n\n%s\n\n", s.title, hint, s.input.View())
	if s.err != nil {
		b.WriteString(errorStyle.Render(s.err.Error()) + "\n\n")
	}
	b.WriteString("(press enter to confirm)\n")
	return b.String()
}
