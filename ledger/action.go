package ledger

import "strings"

// Action is the closed set of ledger operations a transaction can map to.
// Classification happens exactly once per transaction; everything downstream
// switches on the enum, never on the raw string.
type Action int

const (
	SpotBuy Action = iota
	SpotSell
	OpenLong
	CloseLong
	OpenShort
	CloseShort
	Neutral // dividend, deposit, withdraw, transfer: never touches the lot ledger
)

func (a Action) String() string {
	switch a {
	case SpotBuy:
		return "spot_buy"
	case SpotSell:
		return "spot_sell"
	case OpenLong:
		return "open_long"
	case CloseLong:
		return "close_long"
	case OpenShort:
		return "open_short"
	case CloseShort:
		return "close_short"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Classify maps a transaction's action string onto an Action.
//
// Unrecognized strings are an error, not a guess: a misclassified action
// silently corrupts FIFO order for every later transaction on the symbol.
// A bare "liquidation" is rejected for the same reason, since it does not
// say which side of the book it closes.
func Classify(action string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "buy":
		return SpotBuy, nil
	case "sell":
		return SpotSell, nil
	case "long", "open_long":
		return OpenLong, nil
	case "close_long", "liquidate_long":
		return CloseLong, nil
	case "short", "open_short":
		return OpenShort, nil
	case "close_short", "liquidate_short":
		return CloseShort, nil
	case "dividend", "deposit", "withdraw", "transfer":
		return Neutral, nil
	}
	return Neutral, &UnknownActionError{Action: action}
}

// opensPosition reports whether the action pushes a new lot.
func (a Action) opensPosition() bool {
	return a == SpotBuy || a == OpenLong || a == OpenShort
}

// closesPosition reports whether the action consumes open lots.
func (a Action) closesPosition() bool {
	return a == SpotSell || a == CloseLong || a == CloseShort
}

// direction is +1 for long-side exposure and -1 for short-side.
func (a Action) direction() float64 {
	if a == OpenShort || a == CloseShort {
		return -1
	}
	return 1
}
