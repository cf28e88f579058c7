// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"moabook/cardsheet/internal/config"
	"moabook/cardsheet/internal/logging"
)

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration, available to subcommands
	// after PersistentPreRunE.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "cardsheet",
		Short: "Convert card, bank and voucher statement spreadsheets to canonical transactions.",
		Long: `cardsheet ingests the statement spreadsheets of the supported card issuers,
the KB bank export and the regional voucher systems, normalizes them into one
canonical transaction schema, and optionally classifies rows with Gemini.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = cfg.NewLogger()
			logging.SetDefaultLogger(Log)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
	}
)
