package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamfolio/siamfolio/ledger"
	"github.com/siamfolio/siamfolio/market"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTx(account, symbol string, n int) ledger.Transaction {
	return ledger.Transaction{
		AccountID: account,
		Symbol:    symbol,
		Class:     market.Stock,
		Market:    "SET",
		Action:    "buy",
		Quantity:  100,
		Price:     34.5,
		Fee:       12,
		Currency:  "THB",
		Timestamp: time.Date(2024, 1, 2, 9, 30, n, 0, time.UTC),
	}
}

func TestInsertAssignsULID(t *testing.T) {
	s := openTestStore(t)

	id1, err := s.Insert(sampleTx("acc-1", "PTT", 0))
	require.NoError(t, err)
	id2, err := s.Insert(sampleTx("acc-1", "PTT", 1))
	require.NoError(t, err)

	assert.Len(t, id1, 26)
	assert.NotEqual(t, id1, id2)
	assert.Less(t, id1, id2) // monotonic within a process
}

func TestInsertKeepsGivenID(t *testing.T) {
	s := openTestStore(t)

	tx := sampleTx("acc-1", "PTT", 0)
	tx.ID = "external-id"
	got, err := s.Insert(tx)
	require.NoError(t, err)
	assert.Equal(t, "external-id", got)
}

func TestInsertRejectsBadInput(t *testing.T) {
	s := openTestStore(t)

	bad := sampleTx("acc-1", "PTT", 0)
	bad.Class = "beanie_babies"
	_, err := s.Insert(bad)
	assert.Error(t, err)

	neg := sampleTx("acc-1", "PTT", 0)
	neg.Quantity = -1
	_, err = s.Insert(neg)
	assert.Error(t, err)
}

func TestListOrdersByTimestamp(t *testing.T) {
	s := openTestStore(t)

	// Inserted newest first; List must come back oldest first.
	for _, n := range []int{2, 0, 1} {
		_, err := s.Insert(sampleTx("acc-1", "PTT", n))
		require.NoError(t, err)
	}

	txs, err := s.List()
	require.NoError(t, err)
	require.Len(t, txs, 3)
	for i := 1; i < len(txs); i++ {
		assert.False(t, txs[i].Timestamp.Before(txs[i-1].Timestamp))
	}
}

func TestListByAccount(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Insert(sampleTx("acc-1", "PTT", 0))
	require.NoError(t, err)
	_, err = s.Insert(sampleTx("acc-2", "AOT", 1))
	require.NoError(t, err)

	txs, err := s.ListByAccount("acc-2")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "AOT", txs[0].Symbol)
}

func TestRoundTripPreservesFields(t *testing.T) {
	s := openTestStore(t)

	in := ledger.Transaction{
		AccountID: "acc-1",
		Symbol:    "S50Z25",
		Class:     market.Futures,
		Market:    "TFEX",
		Action:    "long",
		Quantity:  2,
		Price:     925.5,
		Fee:       40,
		Currency:  "THB",
		Leverage:  200,
		Unit:      "contract",
		Timestamp: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	_, err := s.Insert(in)
	require.NoError(t, err)

	txs, err := s.List()
	require.NoError(t, err)
	require.Len(t, txs, 1)

	got := txs[0]
	assert.Equal(t, market.Futures, got.Class)
	assert.Equal(t, "TFEX", got.Market)
	assert.InDelta(t, 925.5, got.Price, 1e-9)
	assert.InDelta(t, 200.0, got.Leverage, 1e-9)
	assert.Equal(t, "contract", got.Unit)
	assert.True(t, got.Timestamp.Equal(in.Timestamp))
}
