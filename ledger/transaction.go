package ledger

import (
	"time"

	"github.com/siamfolio/siamfolio/market"
)

// Transaction is one immutable ledger event. Quantity and price are
// non-negative; direction comes from Action. The ingestion layer is
// responsible for rejecting malformed records before they reach the engine.
type Transaction struct {
	ID        string
	AccountID string
	Symbol    string
	Class     market.AssetClass
	Market    string
	Action    string
	Quantity  float64
	Price     float64
	Fee       float64
	Currency  string  // empty means the market's default currency
	Leverage  float64 // contract multiplier for unlisted futures; margin leverage for crypto
	Unit      string  // recording unit for metals/commodities, e.g. "gram", "baht"
	Timestamp time.Time
}

// NativeCurrency is the currency the transaction's monetary fields are
// denominated in.
func (t Transaction) NativeCurrency() string {
	if t.Currency != "" {
		return t.Currency
	}
	return market.DefaultCurrency(t.Market)
}
