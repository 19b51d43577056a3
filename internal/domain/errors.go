package domain

import (
	"fmt"
	"strings"
)

// GeocodeError reports a failed address -> coordinates resolution: the
// provider returned zero results or the network call errored.
type GeocodeError struct {
	Address string
	Err     error
}

func (e *GeocodeError) Error() string { return fmt.Sprintf("geocode %q: %v", e.Address, e.Err) }
func (e *GeocodeError) Unwrap() error { return e.Err }

// RoutingError reports a failed directions lookup between two points.
type RoutingError struct {
	Err error
}

func (e *RoutingError) Error() string { return fmt.Sprintf("route: %v", e.Err) }
func (e *RoutingError) Unwrap() error { return e.Err }

// InvalidCostError reports a computed subtotal that is negative or
// non-finite. It signals an arithmetic bug in a vendor strategy, never a bad
// user input, and is logged loudly when it surfaces.
type InvalidCostError struct {
	Subtotal float64
}

func (e *InvalidCostError) Error() string {
	return fmt.Sprintf("invalid subtotal %v: must be a non-negative finite number", e.Subtotal)
}

// ValidationError aggregates every missing or inconsistent field of a
// MoveRequest. It is the only error that aborts quote generation outright.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "invalid move request: missing " + strings.Join(e.Missing, ", ")
}
