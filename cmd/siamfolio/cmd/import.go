package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siamfolio/siamfolio/config"
	"github.com/siamfolio/siamfolio/store"
)

var importCmd = &cobra.Command{
	Use:   "import <statement.csv>",
	Short: "Import a CSV transaction statement into the ledger store",
	Long: `Parse a CSV broker statement and append its transactions to the SQLite
ledger. Each row is validated and assigned a time-sortable ID.

Example:
  siamfolio import -f siamfolio.yaml statement.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importConfigPath string

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	importCmd.MarkFlagRequired("config")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(importConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	txs, err := store.ReadCSV(args[0])
	if err != nil {
		return fmt.Errorf("parse statement: %w", err)
	}

	st, err := store.NewSQLite(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	for i, tx := range txs {
		if _, err := st.Insert(tx); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}

	fmt.Printf("Imported %d transactions into %s\n", len(txs), cfg.Store.DBPath)
	return nil
}
