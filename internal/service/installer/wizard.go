package installer

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step represents a single step in the installation wizard
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

// skipper is implemented by steps that only apply to some answers.
type skipper interface {
	Skip(state *InstallState) bool
}

func getSteps(runtimePath string) []Step {
	return []Step{
		newInputStep("Telegram Bot Token", "123456789:ABCDEF...",
			func(st *InstallState, v string) { st.Settings.TelegramToken = v },
			secret(), validated(validateToken)),
		NewDeliveryStep(),
		newInputStep("public webhook URL", "https://bot.example.com/telegram",
			func(st *InstallState, v string) { st.Settings.WebhookURL = v },
			validated(validateWebhookURL), skipWhen(func(st *InstallState) bool { return !st.Webhook })),
		newInputStep("OpenWeatherMap API Key", "used by /weather",
			func(st *InstallState, v string) { st.Settings.WeatherAPIKey = v },
			secret(), optional()),
		newInputStep("Google API Key", "used by /search",
			func(st *InstallState, v string) { st.Settings.GoogleAPIKey = v },
			secret(), optional()),
		newInputStep("Google Custom Search engine ID", "used by /search",
			func(st *InstallState, v string) { st.Settings.SearchEngineID = v },
			optional()),
		NewSaveEnvStep(runtimePath),
	}
}

func validateToken(v string) error {
	id, rest, ok := strings.Cut(v, ":")
	if !ok || rest == "" {
		return errors.New("token must look like <bot id>:<secret>")
	}
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return errors.New("token must start with the numeric bot id")
	}
	return nil
}

func validateWebhookURL(v string) error {
	u, err := url.Parse(v)
	if err != nil || u.Host == "" {
		return errors.New("webhook URL must be absolute")
	}
	if u.Scheme != "https" {
		return errors.New("telegram only delivers webhooks over https")
	}
	return nil
}

type errMsg error
type nextMsg struct{}

// model is the main Bubble Tea model that orchestrates the steps
type model struct {
	steps       []Step
	currentStep int
	state       *InstallState
	quitting    bool
	err         error
	width       int
	height      int
}

func initialModel(runtimePath string) model {
	return model{
		steps:       getSteps(runtimePath),
		currentStep: 0,
		state:       NewInstallState(),
	}
}

func (m model) Init() tea.Cmd {
	if len(m.steps) > 0 && m.steps[0] != nil {
		return m.steps[0].Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case errMsg:
		m.err = msg
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}

	nextStep, cmd := m.steps[m.currentStep].Update(msg, m.state, m.width, m.height)

	if nextStep == nil {
		return m.advance()
	}

	// If the step returned a different step (e.g., for branching), update current
	if nextStep != m.steps[m.currentStep] {
		m.steps[m.currentStep] = nextStep
	}

	return m, cmd
}

// advance moves past the finished step and any steps that do not apply.
func (m model) advance() (tea.Model, tea.Cmd) {
	m.currentStep++
	for m.currentStep < len(m.steps) {
		s, ok := m.steps[m.currentStep].(skipper)
		if !ok || !s.Skip(m.state) {
			break
		}
		m.currentStep++
	}

	if m.currentStep >= len(m.steps) {
		return m, tea.Quit
	}
	return m, m.steps[m.currentStep].Init()
}

func (m model) View() string {
	if m.quitting {
		return "Installation cancelled.\n"
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(press ctrl+c to quit)\n"
	}

	if m.currentStep >= len(m.steps) {
		return "Configuration complete!\n"
	}

	return titleStyle.Render("Setting up AssistBot") + "\n\n" + m.steps[m.currentStep].View(m.state)
}

// RunWizard starts the TUI and writes runtimePath/.env on success.
func RunWizard(runtimePath string) (*InstallState, error) {
	p := tea.NewProgram(initialModel(runtimePath), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	finalModel := m.(model)
	if finalModel.err != nil {
		return nil, finalModel.err
	}
	if finalModel.quitting {
		return nil, fmt.Errorf("assistbot installation interrupted")
	}

	return finalModel.state, nil
}
