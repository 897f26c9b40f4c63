// market/assets.go
package market

import "fmt"

// AssetClass identifies how an instrument's quantity, price and multiplier
// are interpreted by the ledger.
type AssetClass string

const (
	Stock        AssetClass = "stock"
	ForeignStock AssetClass = "foreign_stock"
	Crypto       AssetClass = "crypto"
	Futures      AssetClass = "futures"
	Gold         AssetClass = "gold"
	Commodity    AssetClass = "commodity"
)

// ParseAssetClass validates an asset class string as stored in transactions.
func ParseAssetClass(s string) (AssetClass, error) {
	switch AssetClass(s) {
	case Stock, ForeignStock, Crypto, Futures, Gold, Commodity:
		return AssetClass(s), nil
	}
	return "", fmt.Errorf("unknown asset class %q", s)
}

// defaultCurrencies maps a market/exchange tag to the currency its
// instruments are quoted in. Used when a transaction carries no currency.
var defaultCurrencies = map[string]string{
	"SET":  "THB",
	"MAI":  "THB",
	"TFEX": "THB",

	"NYSE":   "USD",
	"NASDAQ": "USD",
	"AMEX":   "USD",

	"LSE":      "GBP",
	"EURONEXT": "EUR",
	"XETRA":    "EUR",
	"HKEX":     "HKD",
	"TSE":      "JPY",
	"SGX":      "SGD",
	"KRX":      "KRW",

	"BINANCE":  "USDT",
	"COINBASE": "USD",
	"BITKUB":   "THB",
	"OKX":      "USDT",
	"HTX":      "USDT",
	"KUCOIN":   "USDT",

	"COMEX": "USD",
	"LBMA":  "USD",
}

// DefaultCurrency returns the quote currency for a market tag, falling back
// to THB for unknown or empty markets.
func DefaultCurrency(market string) string {
	if c, ok := defaultCurrencies[market]; ok {
		return c
	}
	return "THB"
}
