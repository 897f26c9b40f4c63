package ledger

// qtyEpsilon absorbs floating-point drift when deciding a lot is exhausted.
const qtyEpsilon = 1e-8

// depleted reports whether a remaining quantity should be treated as zero.
func depleted(qty float64) bool {
	return qty <= qtyEpsilon
}

// Lot is one open position slice created by a single opening transaction and
// consumed oldest-first by later closing transactions. Quantities and prices
// are in the symbol's canonical unit and native currency.
type Lot struct {
	TxID       string
	Remaining  float64
	EntryPrice float64
	Multiplier float64
	feeLeft    float64 // unamortized share of the opening fee
}

// PnlRecord is the engine's per-transaction output. An opening transaction's
// record is revisited every time a later close consumes part of its lot, so
// it reflects state as of the last transaction processed.
type PnlRecord struct {
	TxID       string
	Realized   float64 // set only on closing transactions
	Unrealized float64 // mark-to-market on the still-open remainder
	Remaining  float64
	Closed     bool

	// PriceMissing marks an unrealized value reported as zero because no
	// current price was supplied, as opposed to a genuine zero gain.
	PriceMissing bool
	// Unconverted marks amounts left in their native currency because an
	// exchange rate was missing.
	Unconverted bool
	// Residual is the unmatched quantity of an over-close.
	Residual float64
	// Currency the monetary fields are expressed in: the requested report
	// currency, or the native currency when Unconverted is set.
	Currency string
}
