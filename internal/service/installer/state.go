package installer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sandevgo/assistbot/pkg/env"
)

var ErrEnvExists = errors.New(".env file already exists")

// Settings is what the wizard collects. Empty fields are left out of the .env file.
type Settings struct {
	TelegramToken  string `env:"TELEGRAM_BOT_TOKEN"`
	WebhookURL     string `env:"TELEGRAM_WEBHOOK_URL"`
	WeatherAPIKey  string `env:"WEATHER_API_KEY"`
	GoogleAPIKey   string `env:"GOOGLE_API_KEY"`
	SearchEngineID string `env:"GOOGLE_CSE_ID"`
}

type InstallState struct {
	Settings Settings
	Webhook  bool
	EnvPath  string
}

func NewInstallState() *InstallState {
	return &InstallState{}
}

// SaveEnv writes settings to dir/.env and returns the file path.
// An existing file is never overwritten.
func SaveEnv(dir string, settings *Settings) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return "", fmt.Errorf("%w at %s", ErrEnvExists, envPath)
	}

	content, err := env.MarshalEnv(settings)
	if err != nil {
		return "", err
	}

	// O_EXCL guards against a file created after the Stat above
	f, err := os.OpenFile(envPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w at %s", ErrEnvExists, envPath)
		}
		return "", err
	}
	if err := writeAndClose(f, content); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", envPath, err)
	}
	return envPath, nil
}

// writeAndClose reports the Close error too, a failed flush means a partial .env.
func writeAndClose(w io.WriteCloser, content string) error {
	if _, err := io.WriteString(w, content); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
