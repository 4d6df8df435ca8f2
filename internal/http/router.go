package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"spendo/internal/http/auth"
	"spendo/internal/http/export"
	authmiddleware "spendo/internal/http/middleware"
	"spendo/internal/http/receipt"
	"spendo/internal/http/report"
	"spendo/internal/http/transaction"
	"spendo/internal/http/voice"
)

func New(
	verifier authmiddleware.TokenVerifier,
	authV1 *auth.Handler,
	transactionsV1 *transaction.Handler,
	reportsV1 *report.Handler,
	voiceV1 *voice.Handler,
	exportV1 *export.Handler,
	receiptsV1 *receipt.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmiddleware.RequireUser(verifier))

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/reports", reportsV1.Routes)

			r.Route("/voice", voiceV1.Routes)

			r.Route("/export", exportV1.Routes)

			r.Route("/receipts", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				receiptsV1.Routes(r)
			})
		})
	})

	return router
}
