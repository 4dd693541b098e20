package telegram

import (
	"context"
	"fmt"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot        *tele.Bot
	cfg        core.TelegramConfig
	dispatcher core.Dispatcher
	registry   core.Registry
	sender     *sender
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	dispatcher core.Dispatcher,
	registry core.Registry,
) (*Bot, error) {
	logger := log.FromCtx(ctx)

	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: newPoller(cfg),
		OnError: func(err error, c tele.Context) {
			logger.Error().Err(err).Msg("telegram handler error")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:        b,
		cfg:        cfg,
		dispatcher: dispatcher,
		registry:   registry,
		sender:     newSender(b, nil),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, log.WithFields(ctx, map[string]any{"update_id": c.Update().ID}))
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)
	b.Handle(tele.OnCallback, bot.handleCallback)

	return bot, nil
}

func newPoller(cfg core.TelegramConfig) tele.Poller {
	if cfg.IsWebhook() {
		return &tele.Webhook{
			Listen:   cfg.GetWebhookListen(),
			Endpoint: &tele.WebhookEndpoint{PublicURL: cfg.GetWebhookURL()},
		}
	}
	return &tele.LongPoller{Timeout: cfg.GetPollTimeout()}
}

func (b *Bot) Name() string {
	return "telegram"
}

// Start publishes the command menu and blocks in the receive loop.
func (b *Bot) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if err := b.bot.SetCommands(menuCommands(b.registry)); err != nil {
		logger.Warn().Err(err).Msg("failed to publish command menu")
	}

	mode := "long polling"
	if b.cfg.IsWebhook() {
		mode = "webhook"
	}
	logger.Info().Str("username", b.bot.Me.Username).Str("mode", mode).Msg("starting telegram bot")

	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	update, ok := fromMessage(c.Message())
	if !ok {
		return nil
	}
	b.dispatch(ctx, update)
	return nil
}

func (b *Bot) handleCallback(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	// stop the client-side spinner first
	if err := c.Respond(); err != nil {
		logger.Debug().Err(err).Msg("failed to answer callback")
	}

	update, ok := fromCallback(c.Callback())
	if !ok {
		logger.Warn().Str("data", c.Callback().Data).Msg("ignoring unknown button")
		return nil
	}
	b.dispatch(ctx, update)
	return nil
}

func (b *Bot) dispatch(ctx context.Context, update core.Update) {
	if err := b.dispatcher.Dispatch(ctx, update, b.sender); err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("chat_id", update.Chat()).Msg("failed to deliver replies")
	}
}

func menuCommands(registry core.Registry) []tele.Command {
	handlers := registry.List()
	cmds := make([]tele.Command, 0, len(handlers))
	for _, h := range handlers {
		cmds = append(cmds, tele.Command{
			Text:        h.Name(),
			Description: h.Description(),
		})
	}
	return cmds
}
