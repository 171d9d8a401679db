package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jewelcraft/jewel-billing/internal/logger"
	"github.com/jewelcraft/jewel-billing/internal/quote"
	"github.com/jewelcraft/jewel-billing/internal/render"
)

type quoteJSON struct {
	Customer string `json:"customer,omitempty"`
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax_amount"`
	Discount string `json:"discount_amount"`
	Total    string `json:"total_amount"`
}

func newQuoteCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "quote <file.yaml>",
		Short: "Price a draft bill from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.WithComponent("quote")

			f, err := quote.Load(args[0])
			if err != nil {
				return err
			}
			q, err := quote.Price(f)
			if err != nil {
				return fmt.Errorf("pricing %s: %w", args[0], err)
			}
			log.Debug().
				Str("file", args[0]).
				Int("items", len(q.Lines)).
				Str("total", q.Totals.Total.StringFixed(2)).
				Msg("quote priced")

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(quoteJSON{
					Customer: q.Customer,
					Subtotal: q.Totals.Subtotal.StringFixed(2),
					Tax:      q.Totals.Tax.StringFixed(2),
					Discount: q.Totals.Discount.StringFixed(2),
					Total:    q.Totals.Total.StringFixed(2),
				})
			}
			_, err = fmt.Fprintln(out, render.Quote(q))
			return err
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print totals as JSON")
	return c
}
