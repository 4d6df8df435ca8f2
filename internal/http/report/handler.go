package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"spendo/internal/http/middleware"
	"spendo/internal/report"
	"spendo/internal/transaction"
)

type Handler struct {
	persister transaction.Persister
}

func NewHandler(persister transaction.Persister) *Handler {
	return &Handler{persister: persister}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.generate)
}

type reportResponse struct {
	Period       report.Period             `json:"period"`
	Start        time.Time                 `json:"start"`
	End          time.Time                 `json:"end"`
	Income       decimal.Decimal           `json:"income"`
	Expense      decimal.Decimal           `json:"expense"`
	Balance      decimal.Decimal           `json:"balance"`
	ByCategory   []report.CategoryTotal    `json:"by_category"`
	Transactions []transaction.Transaction `json:"transactions"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	period, err := report.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.persister.Load(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	data := report.Generate(txs, period, now)
	start, end := report.Range(period, now)

	resp := reportResponse{
		Period:       period,
		Start:        start,
		End:          end,
		Income:       data.Income,
		Expense:      data.Expense,
		Balance:      data.Balance,
		ByCategory:   data.ByCategory,
		Transactions: data.Transactions,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
