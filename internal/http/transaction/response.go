package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendo/internal/category"
	"spendo/internal/transaction"
)

type transactionResponse struct {
	ID           uuid.UUID          `json:"id"`
	Amount       decimal.Decimal    `json:"amount"`
	Type         transaction.Type   `json:"type"`
	Category     category.ID        `json:"category"`
	Date         time.Time          `json:"date"`
	Method       transaction.Method `json:"method"`
	Notes        string             `json:"notes"`
	ReceiptImage string             `json:"receipt_image,omitempty"`
}

func toResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		Amount:       tx.Amount,
		Type:         tx.Type,
		Category:     tx.Category,
		Date:         tx.Date,
		Method:       tx.Method,
		Notes:        tx.Notes,
		ReceiptImage: tx.ReceiptImage,
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
