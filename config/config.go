package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete portfolio configuration.
type Config struct {
	Base     BaseConfig      `json:"base" yaml:"base"`
	Store    StoreConfig     `json:"store" yaml:"store"`
	Accounts []AccountConfig `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// BaseConfig fixes the currencies a run is computed in.
type BaseConfig struct {
	// Currency is the single base currency all cross-currency conversions
	// route through. The rate table must be denominated in it.
	Currency string `json:"currency" yaml:"currency"`
	// ReportCurrency is what every P&L figure is expressed in.
	ReportCurrency string `json:"report_currency" yaml:"report_currency"`
}

// StoreConfig locates the transaction store.
type StoreConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// AccountConfig carries per-account goal metadata.
type AccountConfig struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name,omitempty" yaml:"name,omitempty"`
	TargetValue    float64 `json:"target_value,omitempty" yaml:"target_value,omitempty"`
	TargetCurrency string  `json:"target_currency,omitempty" yaml:"target_currency,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Base.Currency == "" {
		return fmt.Errorf("base.currency is required")
	}
	if c.Base.ReportCurrency == "" {
		return fmt.Errorf("base.report_currency is required")
	}
	if c.Store.DBPath == "" {
		return fmt.Errorf("store.db_path is required")
	}
	seen := map[string]bool{}
	for _, a := range c.Accounts {
		if a.ID == "" {
			return fmt.Errorf("accounts entries require an id")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate account id %q", a.ID)
		}
		seen[a.ID] = true
		if a.TargetValue < 0 {
			return fmt.Errorf("account %s: target_value must not be negative", a.ID)
		}
		if a.TargetValue > 0 && a.TargetCurrency == "" {
			return fmt.Errorf("account %s: target_currency required with target_value", a.ID)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Base: BaseConfig{
			Currency:       "USD",
			ReportCurrency: "THB",
		},
		Store: StoreConfig{
			DBPath: "./siamfolio.sqlite",
		},
	}
}
