package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/assistbot/pkg/log"
)

type TelegramConfig struct {
	Token         string        `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
	PollTimeout   time.Duration `env:"TELEGRAM_POLL_TIMEOUT" envDefault:"10s"`
	WebhookURL    string        `env:"TELEGRAM_WEBHOOK_URL"`
	WebhookListen string        `env:"TELEGRAM_WEBHOOK_LISTEN" envDefault:":8443"`
}

func ParseTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewTelegramConfig stops the process when the bot token is missing.
func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c, err := ParseTelegramConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}

func (c TelegramConfig) GetPollTimeout() time.Duration {
	return c.PollTimeout
}

func (c TelegramConfig) GetWebhookURL() string {
	return c.WebhookURL
}

func (c TelegramConfig) GetWebhookListen() string {
	return c.WebhookListen
}

func (c TelegramConfig) IsWebhook() bool {
	return c.WebhookURL != ""
}
