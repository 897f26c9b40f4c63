package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Default().Validate())
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base:
  currency: USD
  report_currency: THB
store:
  db_path: /var/lib/siamfolio/ledger.sqlite
accounts:
  - id: acc-1
    name: Retirement
    target_value: 1000000
    target_currency: THB
  - id: acc-2
`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Base.Currency)
	assert.Equal(t, "THB", cfg.Base.ReportCurrency)
	assert.Equal(t, "/var/lib/siamfolio/ledger.sqlite", cfg.Store.DBPath)
	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "Retirement", cfg.Accounts[0].Name)
	assert.InDelta(t, 1000000.0, cfg.Accounts[0].TargetValue, 1e-9)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "base": {"currency": "USD", "report_currency": "USD"},
  "store": {"db_path": "ledger.sqlite"}
}`), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Base.ReportCurrency)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Accounts = []AccountConfig{{ID: "acc-1", TargetValue: 5000, TargetCurrency: "USD"}}

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Base, got.Base)
	assert.Equal(t, cfg.Accounts, got.Accounts)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing_base_currency", func(c *Config) { c.Base.Currency = "" }},
		{"missing_report_currency", func(c *Config) { c.Base.ReportCurrency = "" }},
		{"missing_db_path", func(c *Config) { c.Store.DBPath = "" }},
		{"account_without_id", func(c *Config) {
			c.Accounts = []AccountConfig{{Name: "nameless"}}
		}},
		{"duplicate_account_id", func(c *Config) {
			c.Accounts = []AccountConfig{{ID: "a"}, {ID: "a"}}
		}},
		{"negative_target", func(c *Config) {
			c.Accounts = []AccountConfig{{ID: "a", TargetValue: -1, TargetCurrency: "THB"}}
		}},
		{"target_without_currency", func(c *Config) {
			c.Accounts = []AccountConfig{{ID: "a", TargetValue: 100}}
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
