package main

import (
	"github.com/sandevgo/assistbot/internal/config"
	"github.com/sandevgo/assistbot/internal/service/installer"
	"github.com/sandevgo/assistbot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the AssistBot configuration",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		// run wizard (includes save step)
		state, err := installer.RunWizard(config.GetRuntimePath())
		if err != nil {
			return err
		}

		logger.Info().Msgf("configuration written to: %s", state.EnvPath)
		logger.Info().Msg("Installation complete! You can now run 'assist start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
