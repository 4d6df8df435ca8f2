package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendo/internal/category"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=transaction
type Persister interface {
	Load(ctx context.Context, userID string) ([]Transaction, error)
	Save(ctx context.Context, userID string, txs []Transaction) error
}

// Notifier receives transaction-created events after a successful append.
// Notification failures never fail the append.
type Notifier interface {
	TransactionCreated(ctx context.Context, tx Transaction) error
}

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidType   = errors.New("type must be income or expense")
)

// CreateParams holds the caller-supplied fields of a new transaction.
type CreateParams struct {
	Amount       decimal.Decimal
	Type         Type
	Category     category.ID
	Date         time.Time
	Method       Method
	Notes        string
	ReceiptImage string
}

// Store is the append-only transaction log for one signed-in user. The
// in-memory collection is the source of truth; the injected Persister
// provides durability (load on open, save on every append).
type Store struct {
	mu        sync.Mutex
	userID    string
	persister Persister
	notifier  Notifier
	txs       []Transaction
}

type Option func(*Store)

// WithNotifier attaches an event notifier to the store.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// Open loads the transaction log for the given user. A user with no
// stored transactions starts with an empty log.
func Open(ctx context.Context, userID string, p Persister, opts ...Option) (*Store, error) {
	txs, err := p.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	s := &Store{
		userID:    userID,
		persister: p,
		txs:       txs,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *Store) UserID() string { return s.userID }

// Append validates the params, assigns a fresh id, prepends the record
// so the newest transaction is listed first, and saves the updated
// collection synchronously. A validation or persistence failure leaves
// the log unchanged.
func (s *Store) Append(ctx context.Context, params CreateParams) (Transaction, error) {
	if err := validate(params); err != nil {
		return Transaction{}, err
	}

	tx := Transaction{
		ID:           uuid.New(),
		UserID:       s.userID,
		Amount:       params.Amount,
		Type:         params.Type,
		Category:     params.Category,
		Date:         params.Date,
		Method:       params.Method,
		Notes:        params.Notes,
		ReceiptImage: params.ReceiptImage,
	}

	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	if tx.Method == "" {
		tx.Method = MethodOther
	}

	if tx.Notes == "" {
		tx.Notes = DefaultNotes
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]Transaction, 0, len(s.txs)+1)
	updated = append(updated, tx)
	updated = append(updated, s.txs...)

	if err := s.persister.Save(ctx, s.userID, updated); err != nil {
		return Transaction{}, fmt.Errorf("saving transactions: %w", err)
	}

	s.txs = updated

	if s.notifier != nil {
		if err := s.notifier.TransactionCreated(ctx, tx); err != nil {
			slog.Warn("transaction event not delivered", "transaction_id", tx.ID, "error", err)
		}
	}

	return tx, nil
}

// List returns all transactions in store order, newest first. The
// returned slice is a copy.
func (s *Store) List() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Transaction, len(s.txs))
	copy(out, s.txs)

	return out
}

func validate(params CreateParams) error {
	if !params.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if params.Type != TypeIncome && params.Type != TypeExpense {
		return ErrInvalidType
	}

	return nil
}
