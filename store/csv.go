package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/siamfolio/siamfolio/ledger"
	"github.com/siamfolio/siamfolio/market"
)

var csvHeader = []string{
	"account_id", "symbol", "class", "market", "action",
	"quantity", "price", "fee", "currency", "leverage", "unit", "timestamp",
}

// ReadCSV parses a transaction statement. The first row must be the header;
// timestamps are RFC 3339. IDs are assigned on insert, not in the file.
func ReadCSV(path string) ([]ledger.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}
	if len(rows[0]) != len(csvHeader) {
		return nil, fmt.Errorf("read %s: expected %d columns, got %d", path, len(csvHeader), len(rows[0]))
	}

	var out []ledger.Transaction
	for i, row := range rows[1:] {
		tx, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, i+2, err)
		}
		out = append(out, tx)
	}
	return out, nil
}

// WriteCSV exports transactions in the same layout ReadCSV accepts.
func WriteCSV(path string, txs []ledger.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := w.Write([]string{
			tx.AccountID,
			tx.Symbol,
			string(tx.Class),
			tx.Market,
			tx.Action,
			fmtFloat(tx.Quantity),
			fmtFloat(tx.Price),
			fmtFloat(tx.Fee),
			tx.Currency,
			fmtFloat(tx.Leverage),
			tx.Unit,
			tx.Timestamp.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func parseRow(row []string) (ledger.Transaction, error) {
	if len(row) != len(csvHeader) {
		return ledger.Transaction{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(row))
	}

	class, err := market.ParseAssetClass(row[2])
	if err != nil {
		return ledger.Transaction{}, err
	}
	qty, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("quantity: %w", err)
	}
	price, err := strconv.ParseFloat(row[6], 64)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("price: %w", err)
	}
	fee := 0.0
	if row[7] != "" {
		if fee, err = strconv.ParseFloat(row[7], 64); err != nil {
			return ledger.Transaction{}, fmt.Errorf("fee: %w", err)
		}
	}
	leverage := 0.0
	if row[9] != "" {
		if leverage, err = strconv.ParseFloat(row[9], 64); err != nil {
			return ledger.Transaction{}, fmt.Errorf("leverage: %w", err)
		}
	}
	ts, err := time.Parse(time.RFC3339, row[11])
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("timestamp: %w", err)
	}

	return ledger.Transaction{
		AccountID: row[0],
		Symbol:    row[1],
		Class:     class,
		Market:    row[3],
		Action:    row[4],
		Quantity:  qty,
		Price:     price,
		Fee:       fee,
		Currency:  row[8],
		Leverage:  leverage,
		Unit:      row[10],
		Timestamp: ts,
	}, nil
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
