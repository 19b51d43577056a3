package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"moving-quote-service/internal/api/dto"
	"moving-quote-service/internal/domain"
)

// QuoteGenerator is the orchestrator boundary the handler depends on.
type QuoteGenerator interface {
	GenerateQuotes(ctx context.Context, req domain.MoveRequest) ([]domain.QuoteResult, error)
}

// QuoteHandler exposes quote generation over HTTP.
type QuoteHandler struct {
	Quotes QuoteGenerator
}

// Create fans a move request out to every vendor and returns the sorted
// offers. Incomplete requests get a 400 listing every missing field; a
// request with zero successful vendors still returns a well-formed list.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	results, err := h.Quotes.GenerateQuotes(r.Context(), req.ToDomain())
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, r, http.StatusBadRequest, map[string]any{
				"error":          "move request is incomplete",
				"missing_fields": ve.Missing,
			})
			return
		}

		log.Printf("generate quotes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListQuotesResponse{
		Quotes: make([]dto.QuoteResultResponse, 0, len(results)),
	}
	for _, result := range results {
		res.Quotes = append(res.Quotes, dto.FromResult(result))
	}

	writeJSON(w, r, http.StatusOK, res)
}
