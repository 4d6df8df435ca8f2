package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spendo/internal/auth"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/signin", h.signIn)
	r.Post("/signup", h.signUp)
	r.Post("/social", h.socialSignIn)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"`
}

type socialSignInRequest struct {
	Provider auth.Provider `json:"provider"`
}

type sessionResponse struct {
	User  auth.Profile `json:"user"`
	Token string       `json:"token"`
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, token, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	writeSession(w, profile, token)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, token, err := h.svc.SignUp(r.Context(), req.Email, req.Password, req.Name, req.BusinessName, req.Currency)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	writeSession(w, profile, token)
}

func (h *Handler) socialSignIn(w http.ResponseWriter, r *http.Request) {
	var req socialSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Provider != auth.ProviderGoogle && req.Provider != auth.ProviderFacebook {
		http.Error(w, "unknown provider", http.StatusBadRequest)
		return
	}

	profile, token, err := h.svc.SocialSignIn(r.Context(), req.Provider)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	writeSession(w, profile, token)
}

func writeAuthError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrMissingCredentials) || errors.Is(err, auth.ErrMissingName) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, err.Error(), http.StatusUnauthorized)
}

func writeSession(w http.ResponseWriter, profile auth.Profile, token string) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(sessionResponse{User: profile, Token: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
