package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siamfolio/siamfolio/config"
	"github.com/siamfolio/siamfolio/ledger"
	"github.com/siamfolio/siamfolio/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <out.csv>",
	Short: "Export the transaction ledger to a CSV file",
	Long: `Write the stored transaction history, ordered by timestamp, in the same
CSV layout the import command accepts.

Example:
  siamfolio export -f siamfolio.yaml backup.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportConfigPath string
	exportAccount    string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	exportCmd.Flags().StringVar(&exportAccount, "account", "", "limit the export to one account")
	exportCmd.MarkFlagRequired("config")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(exportConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := store.NewSQLite(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var txs []ledger.Transaction
	if exportAccount != "" {
		txs, err = st.ListByAccount(exportAccount)
	} else {
		txs, err = st.List()
	}
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	if err := store.WriteCSV(args[0], txs); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}

	fmt.Printf("Exported %d transactions to %s\n", len(txs), args[0])
	return nil
}
