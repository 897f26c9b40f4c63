package report

import (
	"sort"
	"strings"

	"github.com/siamfolio/siamfolio/ledger"
	"github.com/siamfolio/siamfolio/market"
)

// AccountMeta is the optional goal metadata configured per account.
type AccountMeta struct {
	ID             string
	Name           string
	TargetValue    float64
	TargetCurrency string
}

// SymbolSummary rolls one symbol's records up within a single position
// bucket. Spot and derivative buckets for the same symbol stay separate and
// are only placed side by side at presentation; their lots are never merged.
type SymbolSummary struct {
	AccountID string
	Symbol    string
	Class     market.AssetClass
	Market    string
	Bucket    ledger.Bucket

	CostBasis   float64 // still-open lots at entry price
	MarketValue float64 // still-open lots at current price
	Realized    float64
	Unrealized  float64
	Dividends   float64
	Currency    string

	PriceMissing bool
	Unconverted  bool
}

// AccountSummary totals every bucket owned by one account, plus goal
// progress when a target is configured.
type AccountSummary struct {
	AccountID string
	Name      string

	CostBasis   float64
	MarketValue float64
	Realized    float64
	Unrealized  float64
	Dividends   float64
	Currency    string

	TargetValue  float64
	GoalProgress float64 // percent of target, 0 when no target is set
}

type bucketKey struct {
	account string
	class   market.AssetClass
	mkt     string
	symbol  string
	bucket  ledger.Bucket
}

// Aggregate rolls per-transaction records up into per-symbol and per-account
// summaries in the given currency.
func Aggregate(
	res *ledger.Result,
	txs []ledger.Transaction,
	accounts []AccountMeta,
	prices map[string]float64,
	rates market.RateTable,
	currency string,
) ([]SymbolSummary, []AccountSummary) {
	buckets := map[bucketKey]*SymbolSummary{}

	summary := func(k bucketKey) *SymbolSummary {
		s, ok := buckets[k]
		if !ok {
			s = &SymbolSummary{
				AccountID: k.account,
				Symbol:    k.symbol,
				Class:     k.class,
				Market:    k.mkt,
				Bucket:    k.bucket,
				Currency:  market.AliasCurrency(currency),
			}
			buckets[k] = s
		}
		return s
	}

	// Realized/unrealized and dividend income come from the records, walked
	// via the transactions so each record lands in its symbol bucket.
	for _, tx := range txs {
		rec, ok := res.Records[tx.ID]
		if !ok {
			// Shard aborted before reaching this transaction.
			continue
		}
		action, err := ledger.Classify(tx.Action)
		if err != nil {
			continue
		}

		k := bucketKey{tx.AccountID, tx.Class, tx.Market, tx.Symbol, actionBucket(action)}
		s := summary(k)

		if action == ledger.Neutral {
			if strings.EqualFold(strings.TrimSpace(tx.Action), "dividend") {
				// Dividend entries store the paid amount in the price field.
				amount, ok := rates.Convert(tx.Price, tx.NativeCurrency(), currency)
				if !ok {
					s.Unconverted = true
				}
				s.Dividends += amount
			}
			continue
		}

		s.Realized += rec.Realized
		s.Unrealized += rec.Unrealized
		if rec.PriceMissing {
			s.PriceMissing = true
		}
		if rec.Unconverted {
			s.Unconverted = true
		}
	}

	// Cost basis and market value come from the surviving lots.
	for _, lot := range res.Open {
		k := bucketKey{lot.AccountID, lot.Class, lot.Market, lot.Symbol, lot.Bucket}
		s := summary(k)

		basis, ok := rates.Convert(lot.Remaining*lot.EntryPrice*lot.Multiplier, lot.Currency, currency)
		if !ok {
			s.Unconverted = true
		}
		s.CostBasis += basis

		price, havePrice := prices[lot.Symbol]
		if !havePrice {
			// Mark the position at cost so the total is not silently short.
			s.PriceMissing = true
			s.MarketValue += basis
			continue
		}
		value, ok := rates.Convert(lot.Remaining*price*lot.Multiplier, lot.Currency, currency)
		if !ok {
			s.Unconverted = true
		}
		s.MarketValue += value
	}

	symbols := make([]SymbolSummary, 0, len(buckets))
	for _, s := range buckets {
		symbols = append(symbols, *s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		a, b := symbols[i], symbols[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.Bucket < b.Bucket
	})

	return symbols, accountSummaries(symbols, accounts, rates, currency)
}

func accountSummaries(symbols []SymbolSummary, accounts []AccountMeta, rates market.RateTable, currency string) []AccountSummary {
	meta := map[string]AccountMeta{}
	for _, a := range accounts {
		meta[a.ID] = a
	}

	totals := map[string]*AccountSummary{}
	var order []string
	for _, s := range symbols {
		t, ok := totals[s.AccountID]
		if !ok {
			t = &AccountSummary{AccountID: s.AccountID, Currency: market.AliasCurrency(currency)}
			if m, ok := meta[s.AccountID]; ok {
				t.Name = m.Name
			}
			totals[s.AccountID] = t
			order = append(order, s.AccountID)
		}
		t.CostBasis += s.CostBasis
		t.MarketValue += s.MarketValue
		t.Realized += s.Realized
		t.Unrealized += s.Unrealized
		t.Dividends += s.Dividends
	}

	out := make([]AccountSummary, 0, len(order))
	for _, id := range order {
		t := totals[id]
		if m, ok := meta[id]; ok && m.TargetValue > 0 {
			target, _ := rates.Convert(m.TargetValue, m.TargetCurrency, currency)
			if target > 0 {
				t.TargetValue = target
				t.GoalProgress = t.MarketValue / target * 100
			}
		}
		out = append(out, *t)
	}
	return out
}

// actionBucket mirrors the engine's queue selection so summaries land in the
// same bucket their lots live in. Neutral events ride with spot.
func actionBucket(a ledger.Action) ledger.Bucket {
	switch a {
	case ledger.OpenLong, ledger.CloseLong:
		return ledger.BucketLong
	case ledger.OpenShort, ledger.CloseShort:
		return ledger.BucketShort
	default:
		return ledger.BucketSpot
	}
}
