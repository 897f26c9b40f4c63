package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action   string
		expected Action
	}{
		{"buy", SpotBuy},
		{"SELL", SpotSell},
		{"long", OpenLong},
		{"open_long", OpenLong},
		{"close_long", CloseLong},
		{"liquidate_long", CloseLong},
		{"short", OpenShort},
		{"Close_Short", CloseShort},
		{"liquidate_short", CloseShort},
		{"dividend", Neutral},
		{"deposit", Neutral},
		{"withdraw", Neutral},
		{"transfer", Neutral},
		{"  buy  ", SpotBuy},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.action, func(t *testing.T) {
			t.Parallel()
			got, err := Classify(tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, action := range []string{"", "hodl", "liquidation", "close"} {
		_, err := Classify(action)
		assert.Error(t, err, "action %q", action)

		var unknown *UnknownActionError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, action, unknown.Action)
	}
}

func TestActionDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, SpotBuy.direction())
	assert.Equal(t, 1.0, CloseLong.direction())
	assert.Equal(t, -1.0, OpenShort.direction())
	assert.Equal(t, -1.0, CloseShort.direction())
}
