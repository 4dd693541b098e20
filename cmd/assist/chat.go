package main

import (
	"os"
	"os/signal"
	"os/user"

	"github.com/sandevgo/assistbot/internal/config"
	"github.com/sandevgo/assistbot/internal/transport/cli"
	"github.com/sandevgo/assistbot/pkg/log"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the bot from the terminal",
	Long:  `Runs the chat commands locally without Telegram. Type 'exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		loadEnv(ctx)
		appCfg := config.NewAppConfig(ctx)
		_, dispatcher := newDispatcher(ctx, appCfg)

		var name string
		if u, err := user.Current(); err == nil {
			name = u.Username
		}

		console, err := cli.NewConsole(dispatcher, appCfg.GetRuntimePath(), name)
		if err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("failed to open console")
			return err
		}
		defer console.Shutdown(ctx)

		return console.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
