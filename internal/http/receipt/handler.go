package receipt

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spendo/internal/receipt"
)

type Handler struct {
	extractor receipt.Extractor
}

func NewHandler(extractor receipt.Extractor) *Handler {
	return &Handler{extractor: extractor}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/scan", h.scan)
}

type scanRequest struct {
	ImageRef string `json:"image_ref"`
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	extraction, err := h.extractor.Extract(r.Context(), req.ImageRef)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(extraction); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
