package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
	"googlemaps.github.io/maps"
)

// GoogleProvider geocodes through the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient
	log    *slog.Logger
}

// GoogleAPIClient is satisfied by *maps.Client.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// NewGoogleProvider wraps an existing Google Maps client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode returns the location of the first result. The viewport of that
// result is logged at debug level since it describes how precise the match is.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (spherical.LatLng, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	results, err := gp.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return spherical.LatLng{}, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(results) == 0 {
		return spherical.LatLng{}, ErrEmptyResponse
	}

	geometry := results[0].Geometry
	viewport := spherical.BoundsFromGoogle(geometry.Viewport)
	gp.log.DebugContext(ctx, "Google Maps match",
		"location_type", geometry.LocationType,
		"viewport", viewport.String())

	return spherical.Convert(geometry.Location)
}
