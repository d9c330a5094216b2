package gateway

import (
	"context"
	"errors"

	"home-visit-planner/internal/domain/entity"
)

// ErrNoResult is returned when the provider resolves nothing for an address.
// It distinguishes "no match" from a failed lookup (network error, bad status).
var ErrNoResult = errors.New("geocoder: no result for address")

// Geocoder resolves a free-text postal address to geographic coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, address string) (entity.Coordinates, error)
}
