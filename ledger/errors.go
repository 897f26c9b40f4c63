package ledger

import "fmt"

// UnknownActionError reports an action string the classifier refuses to map.
// Processing for the affected symbol stops at the offending transaction.
type UnknownActionError struct {
	TxID   string
	Symbol string
	Action string
}

func (e *UnknownActionError) Error() string {
	if e.TxID == "" {
		return fmt.Sprintf("unknown action %q", e.Action)
	}
	return fmt.Sprintf("transaction %s (%s): unknown action %q", e.TxID, e.Symbol, e.Action)
}

// OverCloseError reports a closing transaction whose quantity exceeded all
// open lots for its symbol. The unmatched residual is carried on the error
// and on the transaction's record; no phantom lot is created to absorb it.
type OverCloseError struct {
	TxID     string
	Symbol   string
	Residual float64
}

func (e *OverCloseError) Error() string {
	return fmt.Sprintf("transaction %s (%s): close quantity exceeds open lots by %g", e.TxID, e.Symbol, e.Residual)
}
