// Package geocoding resolves a postal address into a spherical.LatLng.
// The measurement service uses it once at startup when the depot is
// configured by address instead of by coordinates.
package geocoding

import (
	"context"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
)

// Provider turns an address into a normalized coordinate.
type Provider interface {
	Geocode(ctx context.Context, address string) (spherical.LatLng, error)
}
