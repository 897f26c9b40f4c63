package ledger

import (
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/siamfolio/siamfolio/market"
)

// Bucket names one of the independent FIFO queues held per ledger key. Spot
// ownership and derivative margin positions are never matched against each
// other, so the same symbol can hold all three at once.
type Bucket string

const (
	BucketSpot  Bucket = "spot"
	BucketLong  Bucket = "long"
	BucketShort Bucket = "short"
)

// Inputs is everything one engine run consumes. All of it is pre-fetched by
// collaborators; the engine itself never reads ambient state or does I/O.
type Inputs struct {
	// Transactions in any order; the engine sorts a copy ascending by
	// timestamp with input order as the tie-break.
	Transactions []Transaction
	// Prices maps symbol to current price in the symbol's native currency
	// per canonical unit.
	Prices map[string]float64
	// Rates converts between the currencies the transactions reference.
	Rates market.RateTable
	// Currency all monetary outputs are expressed in.
	Currency string
}

// OpenLot is a still-open lot surviving the run, reported for aggregation.
// Monetary fields stay in the lot's native currency.
type OpenLot struct {
	AccountID  string
	Symbol     string
	Class      market.AssetClass
	Market     string
	Bucket     Bucket
	TxID       string
	Remaining  float64
	EntryPrice float64
	Multiplier float64
	Currency   string
}

// Result is the output of one engine run. Records is keyed by transaction ID
// and holds exactly one record per input transaction that was processed.
type Result struct {
	Records map[string]*PnlRecord
	Open    []OpenLot
}

// ledgerKey scopes one set of FIFO queues. Positions never cross accounts,
// asset classes, markets or symbols.
type ledgerKey struct {
	account string
	class   market.AssetClass
	mkt     string
	symbol  string
}

// position holds the three independent queues for one ledger key.
type position struct {
	spot  []*Lot
	long  []*Lot
	short []*Lot
}

func (p *position) queue(a Action) *[]*Lot {
	switch a {
	case SpotBuy, SpotSell:
		return &p.spot
	case OpenShort, CloseShort:
		return &p.short
	default:
		return &p.long
	}
}

// Compute runs the FIFO matching engine over the full transaction history.
//
// Each ledger key's queues are fully independent, so keys are processed in
// parallel and joined at the end. Classification and over-close failures
// abort the affected key's shard and are surfaced in the returned error;
// records for the other keys (and for the shard's transactions before the
// failure) are still produced.
func Compute(in Inputs) (*Result, error) {
	txs := make([]Transaction, len(in.Transactions))
	copy(txs, in.Transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Timestamp.Before(txs[j].Timestamp)
	})

	shards := map[ledgerKey][]Transaction{}
	for _, tx := range txs {
		k := ledgerKey{tx.AccountID, tx.Class, tx.Market, tx.Symbol}
		shards[k] = append(shards[k], tx)
	}

	res := &Result{Records: make(map[string]*PnlRecord, len(txs))}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs []error
	)
	for key, shard := range shards {
		wg.Add(1)
		go func(key ledgerKey, shard []Transaction) {
			defer wg.Done()
			recs, open, err := processShard(key, shard, in)

			mu.Lock()
			defer mu.Unlock()
			for id, r := range recs {
				res.Records[id] = r
			}
			res.Open = append(res.Open, open...)
			if err != nil {
				errs = append(errs, err)
			}
		}(key, shard)
	}
	wg.Wait()

	// Deterministic output regardless of shard completion order.
	sort.Slice(res.Open, func(i, j int) bool {
		a, b := res.Open[i], res.Open[j]
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		if a.Bucket != b.Bucket {
			return a.Bucket < b.Bucket
		}
		return a.TxID < b.TxID
	})
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	return res, errors.Join(errs...)
}

// processShard replays one ledger key's transactions in order. On a
// classification or over-close failure it stops, returning the records
// produced so far together with the typed error.
func processShard(key ledgerKey, txs []Transaction, in Inputs) (map[string]*PnlRecord, []OpenLot, error) {
	recs := make(map[string]*PnlRecord, len(txs))
	pos := &position{}

	var shardErr error
	for _, tx := range txs {
		rec := &PnlRecord{TxID: tx.ID, Currency: tx.NativeCurrency()}
		recs[tx.ID] = rec

		action, err := Classify(tx.Action)
		if err != nil {
			shardErr = &UnknownActionError{TxID: tx.ID, Symbol: tx.Symbol, Action: tx.Action}
			break
		}
		if action == Neutral {
			continue
		}

		qty, _ := market.NormalizeQuantity(tx.Class, tx.Symbol, tx.Unit, tx.Quantity)
		px := market.NormalizePrice(tx.Class, tx.Symbol, tx.Unit, tx.Price)
		price, havePrice := in.Prices[tx.Symbol]
		queue := pos.queue(action)
		dir := action.direction()

		if action.opensPosition() {
			lot := &Lot{
				TxID:       tx.ID,
				Remaining:  qty,
				EntryPrice: px,
				Multiplier: market.ContractMultiplier(tx.Class, tx.Symbol, tx.Leverage),
				feeLeft:    tx.Fee,
			}
			*queue = append(*queue, lot)
			rec.Remaining = lot.Remaining
			markToMarket(rec, lot, dir, price, havePrice)
			continue
		}

		// Closing event: consume oldest lots first, strictly FIFO.
		toClose := qty
		var realized float64
		for !depleted(toClose) && len(*queue) > 0 {
			head := (*queue)[0]
			matched := math.Min(toClose, head.Remaining)

			feeShare := head.feeLeft * matched / head.Remaining
			head.feeLeft -= feeShare
			realized += dir*(px-head.EntryPrice)*matched*head.Multiplier - feeShare

			head.Remaining -= matched
			toClose -= matched

			openRec := recs[head.TxID]
			if depleted(head.Remaining) {
				*queue = (*queue)[1:]
				openRec.Remaining = 0
				openRec.Unrealized = 0
				openRec.PriceMissing = false
				openRec.Closed = true
			} else {
				openRec.Remaining = head.Remaining
				markToMarket(openRec, head, dir, price, havePrice)
			}
		}

		rec.Realized = realized - tx.Fee
		rec.Closed = true

		if !depleted(toClose) {
			rec.Residual = toClose
			shardErr = &OverCloseError{TxID: tx.ID, Symbol: tx.Symbol, Residual: toClose}
			break
		}
	}

	// Surviving lots are reported before conversion so their entry prices
	// keep their native currency for the aggregator.
	var open []OpenLot
	for _, q := range []struct {
		bucket Bucket
		lots   []*Lot
	}{
		{BucketSpot, pos.spot},
		{BucketLong, pos.long},
		{BucketShort, pos.short},
	} {
		for _, lot := range q.lots {
			open = append(open, OpenLot{
				AccountID:  key.account,
				Symbol:     key.symbol,
				Class:      key.class,
				Market:     key.mkt,
				Bucket:     q.bucket,
				TxID:       lot.TxID,
				Remaining:  lot.Remaining,
				EntryPrice: lot.EntryPrice,
				Multiplier: lot.Multiplier,
				Currency:   recs[lot.TxID].Currency,
			})
		}
	}

	// Convert once per record, at the very end, so intermediate matches never
	// compound rate rounding.
	for _, rec := range recs {
		native := rec.Currency
		realized, okR := in.Rates.Convert(rec.Realized, native, in.Currency)
		unrealized, okU := in.Rates.Convert(rec.Unrealized, native, in.Currency)
		if okR && okU {
			rec.Realized = realized
			rec.Unrealized = unrealized
			rec.Currency = market.AliasCurrency(in.Currency)
		} else {
			rec.Unconverted = true
		}
	}

	return recs, open, shardErr
}

// markToMarket refreshes an open lot's unrealized P&L on its record. Without
// a current price the value is zero and flagged, never presented as a real
// zero gain.
func markToMarket(rec *PnlRecord, lot *Lot, dir, price float64, havePrice bool) {
	if !havePrice {
		rec.Unrealized = 0
		rec.PriceMissing = true
		return
	}
	rec.Unrealized = dir * (price - lot.EntryPrice) * lot.Remaining * lot.Multiplier
	rec.PriceMissing = false
}
