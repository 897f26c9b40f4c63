package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/siamfolio/siamfolio/ledger"
	"github.com/siamfolio/siamfolio/market"
	"github.com/siamfolio/siamfolio/pkg/id"
)

// SQLite persists the transaction ledger. It is append-only from the
// engine's point of view: the engine reads the full ordered history each
// run and never writes back.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Insert stores one transaction, assigning a ULID when the ID is empty, and
// returns the stored ID. ULIDs are time-sortable, which keeps insertion
// order as the tie-break when timestamps collide.
func (s *SQLite) Insert(tx ledger.Transaction) (string, error) {
	if tx.ID == "" {
		tx.ID = id.New()
	}
	if _, err := market.ParseAssetClass(string(tx.Class)); err != nil {
		return "", err
	}
	if tx.Quantity < 0 || tx.Price < 0 {
		return "", fmt.Errorf("transaction %s: quantity and price must be non-negative", tx.ID)
	}

	_, err := s.db.Exec(`
		INSERT INTO transactions
		(id, account_id, symbol, class, market, action, quantity, price, fee, currency, leverage, unit, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.AccountID, tx.Symbol, string(tx.Class), tx.Market, tx.Action,
		tx.Quantity, tx.Price, tx.Fee, tx.Currency, tx.Leverage, tx.Unit, tx.Timestamp,
	)
	if err != nil {
		return "", err
	}
	return tx.ID, nil
}

// List returns the full transaction history ordered ascending by timestamp,
// ID as the tie-break.
func (s *SQLite) List() ([]ledger.Transaction, error) {
	return s.list(`
		SELECT id, account_id, symbol, class, market, action, quantity, price, fee, currency, leverage, unit, timestamp
		FROM transactions
		ORDER BY timestamp ASC, id ASC`)
}

// ListByAccount returns one account's history in the same order as List.
func (s *SQLite) ListByAccount(accountID string) ([]ledger.Transaction, error) {
	return s.list(`
		SELECT id, account_id, symbol, class, market, action, quantity, price, fee, currency, leverage, unit, timestamp
		FROM transactions
		WHERE account_id = ?
		ORDER BY timestamp ASC, id ASC`, accountID)
}

func (s *SQLite) list(query string, args ...any) ([]ledger.Transaction, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		var class string
		if err := rows.Scan(
			&tx.ID,
			&tx.AccountID,
			&tx.Symbol,
			&class,
			&tx.Market,
			&tx.Action,
			&tx.Quantity,
			&tx.Price,
			&tx.Fee,
			&tx.Currency,
			&tx.Leverage,
			&tx.Unit,
			&tx.Timestamp,
		); err != nil {
			return nil, err
		}
		tx.Class = market.AssetClass(class)
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
