package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
)

// NominatimBaseURL is the public OpenStreetMap search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// nominatimUserAgent must carry contact info per the Nominatim usage policy.
const nominatimUserAgent = "Meridian-Depot-Resolver/1.0 (https://github.com/UnknownOlympus/meridian)"

// NominatimProvider geocodes through OpenStreetMap's Nominatim API.
// The public instance allows one request per second.
type NominatimProvider struct {
	client  HTTPClient
	baseURL string
	log     *slog.Logger
}

// nominatimPlace is one search hit. Nominatim encodes numbers as strings.
type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider uses the public endpoint with a plain http.Client.
func NewNominatimProvider(log *slog.Logger) *NominatimProvider {
	return NewNominatimProviderWithClient(&http.Client{Timeout: defaultHTTPTimeout}, log)
}

// NewNominatimProviderWithClient injects the HTTP client.
func NewNominatimProviderWithClient(client HTTPClient, log *slog.Logger) *NominatimProvider {
	return &NominatimProvider{client: client, baseURL: NominatimBaseURL, log: log}
}

// Geocode searches for the address and then for progressively shorter
// prefixes of it (see addressFallbacks) until one of them has a hit.
// Only an empty result moves on to the next prefix; any other failure is
// returned immediately.
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (spherical.LatLng, error) {
	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	candidates := addressFallbacks(address)
	for level, candidate := range candidates {
		ll, err := np.search(ctx, candidate)
		switch {
		case err == nil:
			if level > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback address",
					"original", address, "fallback", candidate, "fallback_level", level)
			}
			return ll, nil
		case !errors.Is(err, ErrNominatimEmptyResponse):
			return spherical.LatLng{}, err
		}
		np.log.DebugContext(ctx, "No results, trying shorter address", "variation", candidate, "fallback_level", level)
	}

	np.log.WarnContext(ctx, "All address fallbacks exhausted", "address", address, "variations_tried", len(candidates))
	return spherical.LatLng{}, ErrNominatimEmptyResponse
}

// addressFallbacks returns the address followed by unique variants with the
// last one and two comma separated components removed, and finally the first
// component alone. Rural addresses often resolve only at the settlement level.
func addressFallbacks(address string) []string {
	if address == "" {
		return []string{""}
	}

	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	out := []string{address}
	seen := map[string]struct{}{address: {}}
	add := func(v string) {
		if _, dup := seen[v]; v != "" && !dup {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	if len(parts) > 1 {
		add(strings.Join(parts[:len(parts)-1], ", "))
		if len(parts) > 2 {
			add(strings.Join(parts[:len(parts)-2], ", "))
		}
		add(parts[0])
	}
	return out
}

func (np *NominatimProvider) search(ctx context.Context, address string) (spherical.LatLng, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("accept-language", "uk,en")

	header := http.Header{}
	header.Set("User-Agent", nominatimUserAgent)
	header.Set("Accept-Language", "uk,en")

	var places []nominatimPlace
	if err := getJSON(ctx, np.client, np.log, "nominatim", np.baseURL, query, header, &places); err != nil {
		return spherical.LatLng{}, err
	}
	if len(places) == 0 {
		return spherical.LatLng{}, ErrNominatimEmptyResponse
	}

	ll, err := spherical.Convert(map[string]any{"lat": places[0].Lat, "lon": places[0].Lon})
	if err != nil {
		return spherical.LatLng{}, fmt.Errorf("%w: %w", ErrNominatimInvalidCoords, err)
	}
	return ll, nil
}
