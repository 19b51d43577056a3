package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"moving-quote-service/internal/domain"
)

// Orchestrator fans one validated move request out to every vendor strategy
// and merges their outcomes into a single comparable list.
type Orchestrator struct {
	strategies []VendorStrategy
}

func NewOrchestrator(strategies ...VendorStrategy) *Orchestrator {
	return &Orchestrator{strategies: strategies}
}

// ValidateMoveRequest checks structural completeness of the request. This is
// the single validation point: vendors diverge on business rules only, never
// on input validation.
func ValidateMoveRequest(req domain.MoveRequest) error {
	if missing := req.MissingFields(); len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return nil
}

type strategyResult struct {
	vendor string
	result domain.QuoteResult
	err    error
}

// GenerateQuotes validates once, invokes every strategy concurrently, and
// returns priced quotes sorted ascending by final total with rejections
// last. The output is recomputed from scratch per request.
//
// Per-strategy failures are isolated: a failing vendor is excluded from the
// result and logged, so one vendor's routing outage never blocks comparison
// of the others. Only ValidationError aborts the whole operation.
func (o *Orchestrator) GenerateQuotes(ctx context.Context, req domain.MoveRequest) ([]domain.QuoteResult, error) {
	if err := ValidateMoveRequest(req); err != nil {
		return nil, err
	}

	resultsCh := make(chan strategyResult, len(o.strategies))
	var wg sync.WaitGroup

	for _, s := range o.strategies {
		wg.Add(1)
		go func(s VendorStrategy) {
			defer wg.Done()
			res, err := s.CalculateQuote(ctx, req)
			resultsCh <- strategyResult{vendor: s.Name(), result: res, err: err}
		}(s)
	}

	wg.Wait()
	close(resultsCh)

	out := make([]domain.QuoteResult, 0, len(o.strategies))
	for r := range resultsCh {
		if r.err != nil {
			var ice *domain.InvalidCostError
			if errors.As(r.err, &ice) {
				// Never expected in correct operation: a strategy's arithmetic is broken.
				log.Printf("ENGINE BUG vendor=%q invalid subtotal: %v", r.vendor, r.err)
			} else {
				log.Printf("vendor=%q excluded from results: %v", r.vendor, r.err)
			}
			continue
		}

		if r.result.Kind == domain.ResultPriced {
			r.result.Quote.QuoteID = uuid.New()
		}
		out = append(out, r.result)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind == domain.ResultPriced
		}
		if a.Kind == domain.ResultPriced {
			return a.Quote.Total < b.Quote.Total
		}
		// Rejections are not price-comparable; order by vendor for determinism.
		return a.Rejection.Vendor < b.Rejection.Vendor
	})

	return out, nil
}
