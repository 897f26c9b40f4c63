package market

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRates reads a rate table from a YAML or JSON file:
//
//	base: USD
//	rates:
//	  THB: 36.5
//	  EUR: 0.92
func LoadRates(path string) (RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("read rates file: %w", err)
	}

	var rt RateTable
	if err := yaml.Unmarshal(data, &rt); err != nil {
		if jerr := json.Unmarshal(data, &rt); jerr != nil {
			return RateTable{}, fmt.Errorf("parse rates file (tried YAML and JSON): %w", err)
		}
	}
	if rt.Base == "" {
		return RateTable{}, fmt.Errorf("rates file %s: base currency is required", path)
	}
	return rt, nil
}

// LoadPrices reads a symbol -> current price map from a YAML or JSON file.
// Prices are in each symbol's native quote currency.
func LoadPrices(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prices file: %w", err)
	}

	prices := map[string]float64{}
	if err := yaml.Unmarshal(data, &prices); err != nil {
		if jerr := json.Unmarshal(data, &prices); jerr != nil {
			return nil, fmt.Errorf("parse prices file (tried YAML and JSON): %w", err)
		}
	}
	return prices, nil
}
