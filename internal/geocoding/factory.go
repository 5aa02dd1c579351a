package geocoding

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType names a geocoding backend.
type ProviderType string

const (
	ProviderTypeGoogle    ProviderType = "google"
	ProviderTypeNominatim ProviderType = "nominatim"
	ProviderTypeVisicom   ProviderType = "visicom"
)

// defaultVisicomRate is used when no rate limit is configured for Visicom.
const defaultVisicomRate = 5

var (
	ErrUnsupportedProvider = errors.New("unsupported provider type")
	ErrAPIKeyRequired      = errors.New("API key is required")
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType
	APIKey    string // Google and Visicom only
	RateLimit int    // requests per second, 0 means the backend default
	Logger    *slog.Logger
}

// NewProvider builds the backend selected by config.Type.
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return NewNominatimProvider(config.Logger), nil
	case ProviderTypeVisicom:
		return newVisicomProvider(config)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w for %s provider", ErrAPIKeyRequired, config.Type)
	}

	opts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}
	return NewGoogleProvider(client, config.Logger), nil
}

func newVisicomProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w for %s provider", ErrAPIKeyRequired, config.Type)
	}

	if config.RateLimit == 0 {
		config.RateLimit = defaultVisicomRate
		config.Logger.Warn("Rate limit for Visicom API not set, using default", "value", config.RateLimit)
	}
	return NewVisicomProvider(config.APIKey, config.RateLimit, config.Logger), nil
}
