package market

import "strings"

// stablecoins are aliased to their reference fiat before any rate lookup.
var stablecoins = map[string]string{
	"USDT": "USD",
	"USDC": "USD",
	"BUSD": "USD",
	"DAI":  "USD",
}

// AliasCurrency maps stablecoin codes onto their fiat reference and
// upper-cases everything else.
func AliasCurrency(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if fiat, ok := stablecoins[c]; ok {
		return fiat
	}
	return c
}

// RateTable holds exchange rates routed through a single base currency.
// Rates[X] is how many units of X one unit of Base buys.
type RateTable struct {
	Base  string             `yaml:"base" json:"base"`
	Rates map[string]float64 `yaml:"rates" json:"rates"`
}

// ToBase converts an amount of currency from into the base currency.
// When the rate is missing the amount is returned unchanged with ok=false;
// callers must treat that as a degraded-precision result.
func (rt RateTable) ToBase(amount float64, from string) (float64, bool) {
	from = AliasCurrency(from)
	if from == AliasCurrency(rt.Base) {
		return amount, true
	}
	rate, ok := rt.Rates[from]
	if !ok || rate == 0 {
		return amount, false
	}
	return amount / rate, true
}

// FromBase converts an amount of base currency into currency to, with the
// same missing-rate fallback as ToBase.
func (rt RateTable) FromBase(amount float64, to string) (float64, bool) {
	to = AliasCurrency(to)
	if to == AliasCurrency(rt.Base) {
		return amount, true
	}
	rate, ok := rt.Rates[to]
	if !ok {
		return amount, false
	}
	return amount * rate, true
}

// Convert routes an amount from one currency to another through the base.
// A missing rate on either leg returns the original amount with ok=false,
// which is distinguishable from a true same-currency conversion.
func (rt RateTable) Convert(amount float64, from, to string) (float64, bool) {
	from, to = AliasCurrency(from), AliasCurrency(to)
	if from == to {
		return amount, true
	}
	inBase, ok := rt.ToBase(amount, from)
	if !ok {
		return amount, false
	}
	out, ok := rt.FromBase(inBase, to)
	if !ok {
		return amount, false
	}
	return out, true
}
