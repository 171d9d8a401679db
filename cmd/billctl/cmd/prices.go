package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jewelcraft/jewel-billing/billing/pricing"
	"github.com/jewelcraft/jewel-billing/internal/render"
)

func newPricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "Show the per-gram material price table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.PriceTable(pricing.MaterialPrices(), pricing.DefaultMaterialPrice()))
			return err
		},
	}
}
