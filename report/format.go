package report

import (
	"fmt"
	"strings"
)

// FormatSymbols renders per-symbol summaries as an aligned text table for
// the CLI.
func FormatSymbols(symbols []SymbolSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-12s %-6s %-14s %14s %14s %14s %14s  %s\n",
		"ACCOUNT", "SYMBOL", "BUCKET", "CLASS", "COST BASIS", "MKT VALUE", "REALIZED", "UNREALIZED", "FLAGS")
	for _, s := range symbols {
		fmt.Fprintf(&b, "%-10s %-12s %-6s %-14s %14.2f %14.2f %14.2f %14.2f  %s\n",
			s.AccountID, s.Symbol, s.Bucket, s.Class,
			s.CostBasis, s.MarketValue, s.Realized, s.Unrealized, flags(s.PriceMissing, s.Unconverted))
	}
	return b.String()
}

// FormatAccounts renders per-account summaries, including goal progress when
// a target is configured.
func FormatAccounts(accounts []AccountSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-16s %14s %14s %14s %14s %12s\n",
		"ACCOUNT", "NAME", "MKT VALUE", "REALIZED", "UNREALIZED", "DIVIDENDS", "GOAL")
	for _, a := range accounts {
		goal := "-"
		if a.TargetValue > 0 {
			goal = fmt.Sprintf("%.1f%%", a.GoalProgress)
		}
		fmt.Fprintf(&b, "%-10s %-16s %14.2f %14.2f %14.2f %14.2f %12s\n",
			a.AccountID, a.Name, a.MarketValue, a.Realized, a.Unrealized, a.Dividends, goal)
	}
	return b.String()
}

func flags(priceMissing, unconverted bool) string {
	var f []string
	if priceMissing {
		f = append(f, "no-price")
	}
	if unconverted {
		f = append(f, "unconverted")
	}
	return strings.Join(f, ",")
}
