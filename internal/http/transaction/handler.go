package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"spendo/internal/category"
	"spendo/internal/http/middleware"
	"spendo/internal/transaction"
)

type Handler struct {
	persister transaction.Persister
	opts      []transaction.Option
}

func NewHandler(persister transaction.Persister, opts ...transaction.Option) *Handler {
	return &Handler{persister: persister, opts: opts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

// store opens the requesting user's transaction log. Each request gets
// a fresh view loaded from the persister.
func (h *Handler) store(r *http.Request) (*transaction.Store, error) {
	return transaction.Open(r.Context(), middleware.UserID(r.Context()), h.persister, h.opts...)
}

type createTransactionRequest struct {
	Amount       decimal.Decimal    `json:"amount"`
	Type         transaction.Type   `json:"type"`
	Category     category.ID        `json:"category"`
	Date         *time.Time         `json:"date,omitempty"`
	Method       transaction.Method `json:"method,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	ReceiptImage string             `json:"receipt_image,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store, err := h.store(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	params := transaction.CreateParams{
		Amount:       req.Amount,
		Type:         req.Type,
		Category:     req.Category,
		Method:       req.Method,
		Notes:        req.Notes,
		ReceiptImage: req.ReceiptImage,
	}

	if req.Date != nil {
		params.Date = *req.Date
	}

	tx, err := store.Append(r.Context(), params)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidAmount) || errors.Is(err, transaction.ErrInvalidType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	store, err := h.store(r)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(store.List())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
