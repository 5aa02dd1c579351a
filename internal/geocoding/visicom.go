package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
	"golang.org/x/time/rate"
)

// VisicomBaseURL -- Visicom API base URL.
const VisicomBaseURL = "https://api.visicom.ua/data-api/5.0/uk/geocode.json"

// VisicomProvider geocodes through the Visicom Data API.
type VisicomProvider struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	log     *slog.Logger
	limiter *rate.Limiter
}

// Common errors for Visicom provider.
var (
	ErrVisicomEmptyResponse = errors.New("visicom API returned empty response")
	ErrVisicomEmptyAddress  = errors.New("visicom provider got empty address")
	ErrVisicomInvalidCoords = errors.New("visicom API returned invalid coordinates")
	ErrVisicomUnathorized   = errors.New("visicom API unathorized (invalid API key)")
)

// visicomFeature keeps only the centroid of the matched feature.
type visicomFeature struct {
	Centroid struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geo_centroid"`
}

// NewVisicomProvider allows rateLimit requests per second with an equal burst.
func NewVisicomProvider(apiKey string, rateLimit int, log *slog.Logger) *VisicomProvider {
	return NewVisicomProviderWithClient(
		&http.Client{Timeout: defaultHTTPTimeout},
		apiKey,
		rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		log,
	)
}

// NewVisicomProviderWithClient injects the HTTP client and limiter.
func NewVisicomProviderWithClient(
	client HTTPClient,
	apiKey string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *VisicomProvider {
	return &VisicomProvider{
		client:  client,
		baseURL: VisicomBaseURL,
		apiKey:  apiKey,
		log:     log,
		limiter: limiter,
	}
}

// Geocode waits for the limiter before every request.
func (vp *VisicomProvider) Geocode(ctx context.Context, address string) (spherical.LatLng, error) {
	if err := vp.limiter.Wait(ctx); err != nil {
		return spherical.LatLng{}, fmt.Errorf("rate limit exceeded: %w", err)
	}

	if address == "" {
		return spherical.LatLng{}, ErrVisicomEmptyAddress
	}
	vp.log.DebugContext(ctx, "Geocoding using Visicom", "address", address)

	query := url.Values{}
	query.Set("text", address)
	query.Set("limit", "1")
	query.Set("key", vp.apiKey)

	header := http.Header{}
	header.Set("Accept", "application/json")

	var feature visicomFeature
	err := getJSON(ctx, vp.client, vp.log, "visicom", vp.baseURL, query, header, &feature)
	var status *statusError
	if errors.As(err, &status) && (status.code == http.StatusUnauthorized || status.code == http.StatusForbidden) {
		return spherical.LatLng{}, ErrVisicomUnathorized
	}
	if err != nil {
		return spherical.LatLng{}, err
	}

	coords := feature.Centroid.Coordinates
	if len(coords) == 0 {
		return spherical.LatLng{}, ErrVisicomEmptyResponse
	}

	ll, err := spherical.Convert(coords)
	if err != nil {
		return spherical.LatLng{}, fmt.Errorf("%w: %w", ErrVisicomInvalidCoords, err)
	}

	vp.log.InfoContext(ctx, "Visicom found result", "address", address, "location", ll.String())
	return ll, nil
}
