package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"spendo/internal/transaction"
)

// TransactionPersister adapts a KV into the transaction.Persister
// contract: the whole per-user list is one JSON value.
type TransactionPersister struct {
	kv KV
}

func NewTransactionPersister(kv KV) *TransactionPersister {
	return &TransactionPersister{kv: kv}
}

func (p *TransactionPersister) Load(ctx context.Context, userID string) ([]transaction.Transaction, error) {
	data, ok, err := p.kv.Get(ctx, TransactionsKey(userID))
	if err != nil {
		return nil, fmt.Errorf("loading transactions for %s: %w", userID, err)
	}

	if !ok {
		return nil, nil
	}

	var txs []transaction.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("decoding transactions for %s: %w", userID, err)
	}

	return txs, nil
}

func (p *TransactionPersister) Save(ctx context.Context, userID string, txs []transaction.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encoding transactions for %s: %w", userID, err)
	}

	if err := p.kv.Set(ctx, TransactionsKey(userID), data); err != nil {
		return fmt.Errorf("saving transactions for %s: %w", userID, err)
	}

	return nil
}
