package voice

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spendo/internal/encoding"
	"spendo/internal/voice"
)

// Handler parses free-form speech transcripts into transaction hints.
// The request body is the raw transcript; it is normalized to UTF-8
// before parsing since transcripts arrive from a mix of platforms.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/parse", h.parse)
}

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	transcript, err := encoding.DecodeString(r.Body)
	if err != nil {
		http.Error(w, "unreadable transcript", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(voice.Parse(transcript)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
