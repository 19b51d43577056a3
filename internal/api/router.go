package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"moving-quote-service/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(quotes handlers.QuoteGenerator) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	quoteHandler := &handlers.QuoteHandler{Quotes: quotes}

	r.Get("/health", handlers.Health)
	r.Post("/quotes", quoteHandler.Create)

	return r
}
