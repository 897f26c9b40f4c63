package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "siamfolio",
	Short: "Multi-asset portfolio P&L calculator with strict FIFO lot matching",
	Long: `Siamfolio computes realized and unrealized profit/loss over a full
transaction history.

It provides tools for:
  - FIFO lot matching across spot, long and short positions
  - Thai and foreign equities, crypto, TFEX futures, gold and commodities
  - Unit normalization (gram, baht-weight, salung, troy ounce)
  - Cross-currency reporting through a single base currency
  - Importing broker statements into a local SQLite ledger
  - Per-symbol and per-account summaries with goal tracking`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
