package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jewelcraft/jewel-billing/internal/logger"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "billctl",
		Short: "Offline pricing tools for jewellery bills",
		Long: `billctl prices draft bills with the same material table, tax and
discount rules the billing service uses, without touching the database.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newQuoteCmd(), newPricesCmd())
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	log := logger.WithComponent("cmd")

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		return 1
	}
	return 0
}
