package geocode

import "context"

// Coordinates is a geocoding lookup result.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Provider resolves a postal address to coordinates. Implementations are
// best-effort: a nil result with nil error means the address was not found,
// and callers must not fail entity creation on lookup errors.
type Provider interface {
	Lookup(ctx context.Context, address string) (*Coordinates, error)
}
