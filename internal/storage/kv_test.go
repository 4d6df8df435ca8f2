package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/category"
	"spendo/internal/storage"
	"spendo/internal/transaction"
)

func TestMemory_RoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "profile:1", []byte(`{"id":"1"}`)))

	got, ok, err := kv.Get(ctx, "profile:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"1"}`, string(got))

	require.NoError(t, kv.Delete(ctx, "profile:1"))

	_, ok, err = kv.Get(ctx, "profile:1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "spendo.json")
	ctx := context.Background()

	kv, err := storage.OpenFile(path)
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "transactions:1", []byte(`[]`)))
	require.NoError(t, kv.Set(ctx, "profile:1", []byte(`{"name":"Demo User"}`)))
	require.NoError(t, kv.Close())

	// Reopen and check persistence.
	reopened, err := storage.OpenFile(path)
	require.NoError(t, err)

	got, ok, err := reopened.Get(ctx, "profile:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"name":"Demo User"}`, string(got))
}

func TestFile_RejectsInvalidJSON(t *testing.T) {
	kv, err := storage.OpenFile(filepath.Join(t.TempDir(), "spendo.json"))
	require.NoError(t, err)

	assert.Error(t, kv.Set(context.Background(), "k", []byte("not json")))
}

func TestTransactionPersister_RoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	p := storage.NewTransactionPersister(kv)
	ctx := context.Background()

	// No stored list yet: empty, not an error.
	txs, err := p.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, txs)

	store, err := transaction.Open(ctx, "user-1", p)
	require.NoError(t, err)

	_, err = store.Append(ctx, transaction.CreateParams{
		Amount:   decimal.RequireFromString("42.50"),
		Type:     transaction.TypeExpense,
		Category: category.Transport,
		Date:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Method:   transaction.MethodCash,
		Notes:    "Taxi",
	})
	require.NoError(t, err)

	// A second store for the same user sees the saved record.
	second, err := transaction.Open(ctx, "user-1", p)
	require.NoError(t, err)

	got := second.List()
	require.Len(t, got, 1)
	assert.Equal(t, "Taxi", got[0].Notes)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("42.50")))

	// A different user's scope stays empty.
	other, err := transaction.Open(ctx, "user-2", p)
	require.NoError(t, err)
	assert.Empty(t, other.List())
}
