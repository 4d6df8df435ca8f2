package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/category"
	"spendo/internal/transaction"
)

func TestTransactionCreatedEvent_JSON(t *testing.T) {
	event := TransactionCreatedEvent{
		Transaction: transaction.Transaction{
			ID:       uuid.New(),
			UserID:   "user-1",
			Amount:   decimal.RequireFromString("12.50"),
			Type:     transaction.TypeExpense,
			Category: category.Food,
			Date:     time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC),
			Method:   transaction.MethodCard,
			Notes:    "lunch",
		},
		OccurredAt: time.Date(2025, 10, 27, 12, 0, 1, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var parsed TransactionCreatedEvent
	require.NoError(t, json.Unmarshal(body, &parsed))

	assert.Equal(t, event.Transaction.ID, parsed.Transaction.ID)
	assert.True(t, event.Transaction.Amount.Equal(parsed.Transaction.Amount))
	assert.Equal(t, event.Transaction.Category, parsed.Transaction.Category)
	assert.True(t, event.OccurredAt.Equal(parsed.OccurredAt))
}

func TestAMQPPublisher_CloseWithoutConnection(t *testing.T) {
	var p AMQPPublisher
	assert.NoError(t, p.Close())
}
