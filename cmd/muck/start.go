package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sandevgo/muckraker/pkg/log"
	"github.com/sandevgo/muckraker/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Muckraker services",
	Long:  `Initializes and starts all configured transports (CLI, Telegram, MCP) against the local archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting muckraker")

		services := NewServices(ctx, projectID)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("muckraker has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
