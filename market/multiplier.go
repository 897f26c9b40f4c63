package market

import "strings"

// contractMultipliers maps TFEX symbol prefixes to the notional value of one
// point of price movement per contract. Ordered so longer prefixes match
// before their shorter ancestors (GF10 before GF).
var contractMultipliers = []struct {
	prefix string
	value  float64
}{
	{"S50", 200},  // SET50 index futures: 200 THB per index point
	{"GF10", 10},  // 10 baht-weight gold futures
	{"GF", 50},    // 50 baht-weight gold futures
	{"SVF", 100},  // silver futures: 100 troy oz
	{"USD", 1000}, // USD/THB futures: 1000 USD contract size
	{"BRN", 100},  // brent futures: 100 barrels
}

// ContractMultiplier resolves the per-contract point value for a transaction.
//
// Futures symbols are resolved by prefix convention; unlisted futures fall
// back to the explicit leverage field, which stores the contract multiplier
// for that asset class. Crypto derivatives record full position size in the
// quantity field, so their multiplier is always 1 no matter what leverage
// says: leverage there scales margin, not quantity.
func ContractMultiplier(class AssetClass, symbol string, leverage float64) float64 {
	switch class {
	case Futures:
		s := strings.ToUpper(symbol)
		for _, m := range contractMultipliers {
			if strings.HasPrefix(s, m.prefix) {
				return m.value
			}
		}
		if leverage > 0 {
			return leverage
		}
		return 1
	default:
		return 1
	}
}
