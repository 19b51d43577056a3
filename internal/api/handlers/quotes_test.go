package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moving-quote-service/internal/domain"
)

type stubGenerator struct {
	results []domain.QuoteResult
	err     error
	gotReq  domain.MoveRequest
}

func (s *stubGenerator) GenerateQuotes(ctx context.Context, req domain.MoveRequest) ([]domain.QuoteResult, error) {
	s.gotReq = req
	return s.results, s.err
}

func postQuotes(t *testing.T, h *QuoteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)
	return rec
}

const validBody = `{
	"origin_address": "100 N 1st St, Phoenix, AZ",
	"destination_address": "200 E Oak St, Tempe, AZ",
	"move_date": "2026-09-01",
	"move_time": "morning",
	"home_type": "house",
	"room_count": 3
}`

func TestCreateReturnsQuotes(t *testing.T) {
	stub := &stubGenerator{results: []domain.QuoteResult{
		domain.PricedResult(&domain.Quote{Vendor: "A", Total: 900}),
		domain.RejectedResult(&domain.Rejection{Vendor: "B", Reason: "too far", LongDistance: true}),
	}}
	h := &QuoteHandler{Quotes: stub}

	rec := postQuotes(t, h, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var res struct {
		Quotes []struct {
			Status string  `json:"status"`
			Vendor string  `json:"vendor"`
			Total  float64 `json:"total"`
			Reason string  `json:"reason"`
		} `json:"quotes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if len(res.Quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(res.Quotes))
	}
	if res.Quotes[0].Status != "priced" || res.Quotes[0].Total != 900 {
		t.Errorf("first result = %+v, want priced total 900", res.Quotes[0])
	}
	if res.Quotes[1].Status != "rejected" || res.Quotes[1].Reason == "" {
		t.Errorf("second result = %+v, want rejection with reason", res.Quotes[1])
	}

	if stub.gotReq.RoomCount != 3 || stub.gotReq.HomeType != domain.HomeHouse {
		t.Errorf("decoded request = %+v", stub.gotReq)
	}
	if stub.gotReq.MoveDate.IsZero() {
		t.Error("move date not parsed")
	}
}

func TestCreateValidationErrorLists400(t *testing.T) {
	stub := &stubGenerator{err: &domain.ValidationError{
		Missing: []string{"origin_address", "move_date"},
	}}
	h := &QuoteHandler{Quotes: stub}

	rec := postQuotes(t, h, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var res struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missing_fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(res.MissingFields) != 2 {
		t.Errorf("missing_fields = %v, want both fields listed", res.MissingFields)
	}
}

func TestCreateRejectsMalformedBodies(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"origin_address": `},
		{"unknown field", `{"unknown_field": true}`},
		{"trailing object", `{}{}`},
		{"empty body", ``},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := &QuoteHandler{Quotes: &stubGenerator{}}
			rec := postQuotes(t, h, c.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestCreateInternalError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("orchestrator exploded")}
	h := &QuoteHandler{Quotes: stub}

	rec := postQuotes(t, h, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
