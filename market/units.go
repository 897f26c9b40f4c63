package market

import "strings"

// Conversion factors to grams.
const (
	GramsPerTroyOunce = 31.1034768
	GramsPerBaht      = 15.244 // Thai baht-weight
	GramsPerSalung    = 3.811  // quarter baht-weight
	GramsPerKilogram  = 1000.0
)

// Domestic Thai gold symbols are quoted per baht-weight, not per troy ounce,
// so their canonical unit stays "baht".
func thaiGoldSymbol(symbol string) bool {
	s := strings.ToUpper(symbol)
	return s == "GOLD96.5" || s == "GOLD99.99"
}

// NormalizeQuantity converts a recorded quantity into the unit the symbol's
// current price is quoted in, and returns that canonical unit name.
//
// Precious metals and commodities normalize to troy ounces, except domestic
// Thai gold which stays in baht-weight. Everything else passes through
// unchanged with unit "share".
func NormalizeQuantity(class AssetClass, symbol, unit string, qty float64) (float64, string) {
	switch class {
	case Gold, Commodity:
	default:
		return qty, "share"
	}

	if thaiGoldSymbol(symbol) {
		switch normUnit(unit, "baht") {
		case "salung":
			return qty / 4.0, "baht"
		case "gram", "g":
			return qty / GramsPerBaht, "baht"
		default:
			return qty, "baht"
		}
	}

	switch normUnit(unit, "oz") {
	case "oz", "troy_oz":
		return qty, "oz"
	case "gram", "g":
		return qty / GramsPerTroyOunce, "oz"
	case "kg":
		return qty * GramsPerKilogram / GramsPerTroyOunce, "oz"
	case "baht":
		return qty * GramsPerBaht / GramsPerTroyOunce, "oz"
	case "salung":
		return qty * GramsPerSalung / GramsPerTroyOunce, "oz"
	default:
		return qty, "oz"
	}
}

// NormalizePrice converts a recorded unit price into a price per canonical
// unit, mirroring NormalizeQuantity.
func NormalizePrice(class AssetClass, symbol, unit string, price float64) float64 {
	switch class {
	case Gold, Commodity:
	default:
		return price
	}

	if thaiGoldSymbol(symbol) {
		// Thai gold is quoted per baht-weight even when buying salung,
		// so only gram-priced entries need converting.
		switch normUnit(unit, "baht") {
		case "gram", "g":
			return price * GramsPerBaht
		default:
			return price
		}
	}

	switch normUnit(unit, "oz") {
	case "oz", "troy_oz":
		return price
	case "gram", "g":
		return price * GramsPerTroyOunce
	case "kg":
		return price * GramsPerTroyOunce / GramsPerKilogram
	case "baht":
		return price * GramsPerTroyOunce / GramsPerBaht
	case "salung":
		return price * GramsPerTroyOunce / GramsPerSalung
	default:
		return price
	}
}

func normUnit(unit, fallback string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return fallback
	}
	return u
}
