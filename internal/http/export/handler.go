package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"spendo/internal/export"
	"spendo/internal/http/middleware"
	"spendo/internal/transaction"
)

type Handler struct {
	persister transaction.Persister
}

func NewHandler(persister transaction.Persister) *Handler {
	return &Handler{persister: persister}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	txs, err := h.persister.Load(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", time.Now().Format("20060102")))

	if _, err := w.Write([]byte(export.CSV(txs))); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
