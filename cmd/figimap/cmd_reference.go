package main

import (
	"github.com/spf13/cobra"

	"figimap/internal/mapping"
)

func newReferenceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "List the exchange codes and market sectors the classifier recognizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), opts.pretty, struct {
				ExchangeCodes []string `json:"exchange_codes"`
				MarketSectors []string `json:"market_sectors"`
			}{
				ExchangeCodes: mapping.ExchangeCodes(),
				MarketSectors: mapping.MarketSectors(),
			})
		},
	}
}
