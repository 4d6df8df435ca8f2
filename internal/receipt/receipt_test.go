package receipt_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/receipt"
)

func TestStub_Extract(t *testing.T) {
	ex, err := receipt.Stub{}.Extract(context.Background(), "file:///receipt.jpg")
	require.NoError(t, err)

	require.NotNil(t, ex.Amount)
	assert.True(t, ex.Amount.GreaterThanOrEqual(decimal.NewFromInt(10)))
	assert.True(t, ex.Amount.LessThan(decimal.NewFromInt(110)))

	require.NotNil(t, ex.Date)
	assert.WithinDuration(t, time.Now(), *ex.Date, time.Minute)

	assert.Equal(t, "Sample Store", ex.Vendor)
}

func TestStub_Extract_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := receipt.Stub{Delay: time.Second}.Extract(ctx, "ref")
	assert.ErrorIs(t, err, context.Canceled)
}
