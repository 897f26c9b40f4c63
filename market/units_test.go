package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		class    AssetClass
		symbol   string
		unit     string
		qty      float64
		expected float64
		wantUnit string
	}{
		{
			name:     "stock_passthrough",
			class:    Stock,
			symbol:   "PTT",
			unit:     "",
			qty:      100,
			expected: 100,
			wantUnit: "share",
		},
		{
			name:     "gold_ounces_already_canonical",
			class:    Gold,
			symbol:   "XAU",
			unit:     "oz",
			qty:      2,
			expected: 2,
			wantUnit: "oz",
		},
		{
			name:     "gold_grams_to_ounces",
			class:    Gold,
			symbol:   "XAU",
			unit:     "gram",
			qty:      GramsPerTroyOunce,
			expected: 1,
			wantUnit: "oz",
		},
		{
			name:     "silver_kg_to_ounces",
			class:    Commodity,
			symbol:   "XAG",
			unit:     "kg",
			qty:      1,
			expected: GramsPerKilogram / GramsPerTroyOunce,
			wantUnit: "oz",
		},
		{
			name:     "gold_baht_weight_to_ounces",
			class:    Gold,
			symbol:   "XAU",
			unit:     "baht",
			qty:      2,
			expected: 2 * GramsPerBaht / GramsPerTroyOunce,
			wantUnit: "oz",
		},
		{
			name:     "thai_gold_stays_in_baht",
			class:    Gold,
			symbol:   "GOLD96.5",
			unit:     "baht",
			qty:      3,
			expected: 3,
			wantUnit: "baht",
		},
		{
			name:     "thai_gold_salung_to_baht",
			class:    Gold,
			symbol:   "GOLD96.5",
			unit:     "salung",
			qty:      4,
			expected: 1,
			wantUnit: "baht",
		},
		{
			name:     "thai_gold_grams_to_baht",
			class:    Gold,
			symbol:   "GOLD99.99",
			unit:     "g",
			qty:      GramsPerBaht,
			expected: 1,
			wantUnit: "baht",
		},
		{
			name:     "missing_unit_defaults_to_canonical",
			class:    Gold,
			symbol:   "XAU",
			unit:     "",
			qty:      5,
			expected: 5,
			wantUnit: "oz",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, unit := NormalizeQuantity(tt.class, tt.symbol, tt.unit, tt.qty)
			assert.InDelta(t, tt.expected, got, 1e-9)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestNormalizePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		class    AssetClass
		symbol   string
		unit     string
		price    float64
		expected float64
	}{
		{
			name:     "crypto_passthrough",
			class:    Crypto,
			symbol:   "BTC",
			unit:     "",
			price:    65000,
			expected: 65000,
		},
		{
			name:     "gold_price_per_gram_to_per_ounce",
			class:    Gold,
			symbol:   "XAU",
			unit:     "gram",
			price:    2,
			expected: 2 * GramsPerTroyOunce,
		},
		{
			name:     "gold_price_per_baht_to_per_ounce",
			class:    Gold,
			symbol:   "XAU",
			unit:     "baht",
			price:    40000,
			expected: 40000 * GramsPerTroyOunce / GramsPerBaht,
		},
		{
			name:  "thai_gold_salung_entry_keeps_baht_quote",
			class: Gold,
			// Domestic gold is quoted per baht-weight even when buying salung.
			symbol:   "GOLD96.5",
			unit:     "salung",
			price:    40000,
			expected: 40000,
		},
		{
			name:     "thai_gold_gram_price_to_per_baht",
			class:    Gold,
			symbol:   "GOLD96.5",
			unit:     "gram",
			price:    2600,
			expected: 2600 * GramsPerBaht,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizePrice(tt.class, tt.symbol, tt.unit, tt.price)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestQuantityPriceNotionalInvariant(t *testing.T) {
	t.Parallel()

	// Converting quantity and price in tandem must preserve the notional.
	qty, price := 5.0, 2600.0
	nq, _ := NormalizeQuantity(Gold, "XAU", "gram", qty)
	np := NormalizePrice(Gold, "XAU", "gram", price)
	assert.InDelta(t, qty*price, nq*np, 1e-6)
}
