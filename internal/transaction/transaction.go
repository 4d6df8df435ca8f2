package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendo/internal/category"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Method describes how a transaction was paid. Descriptive only, never
// used in aggregation.
type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodBank   Method = "bank"
	MethodMobile Method = "mobile"
	MethodOther  Method = "other"
)

// DefaultNotes is stored when a transaction is created without notes.
const DefaultNotes = "No notes"

// Transaction represents a single financial event. ID, UserID, Type and
// Amount are fixed at creation; this system has no update or delete
// operation, edits are modeled as replacement.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	UserID       string          `json:"user_id"`
	Amount       decimal.Decimal `json:"amount"`
	Type         Type            `json:"type"`
	Category     category.ID     `json:"category"`
	Date         time.Time       `json:"date"`
	Method       Method          `json:"method"`
	Notes        string          `json:"notes"`
	ReceiptImage string          `json:"receipt_image,omitempty"`
}
