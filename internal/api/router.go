package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/salesdesk/qbo-bridge/docs" // swagger docs
)

func NewRouter(h *Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(Log, Recover, Cors)

	mux.Route("/auth", func(r chi.Router) {
		r.Get("/connect", h.Connect)
		r.Get("/callback", h.Callback)
	})

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.Health)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Get("/items", h.Items)
		r.Get("/customers", h.Customers)
		r.Post("/invoice", h.CreateInvoice)
		r.Post("/estimate", h.CreateEstimate)
	})

	mux.Get("/", h.Index)
	mux.Get("/ingest", h.Index)

	// Anything unmatched falls through to the ingest form.
	mux.NotFound(h.Index)

	return mux
}
