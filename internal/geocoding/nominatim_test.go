package geocoding_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimProvider_Geocode(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("successful geocoding", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Contains(t, req.URL.String(), geocoding.NominatimBaseURL)
				assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, CA", req.URL.Query().Get("q"))
				assert.Equal(t, "json", req.URL.Query().Get("format"))
				assert.Equal(t, "1", req.URL.Query().Get("limit"))
				assert.Contains(t, req.Header.Get("User-Agent"), "github.com/UnknownOlympus/meridian")

				return respond(http.StatusOK, `[{"lat":"37.4224764","lon":"-122.0842499"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		location, err := provider.Geocode(ctx, "1600 Amphitheatre Parkway, Mountain View, CA")

		require.NoError(t, err)
		assert.InDelta(t, 37.4224764, location.Lat(), 1e-9)
		assert.InDelta(t, -122.0842499, location.Lng(), 1e-9)
	})

	t.Run("empty response from API", func(t *testing.T) {
		provider := geocoding.NewNominatimProviderWithClient(staticClient(http.StatusOK, `[]`), logger)
		_, err := provider.Geocode(ctx, "nowhere")

		require.ErrorIs(t, err, geocoding.ErrNominatimEmptyResponse)
	})

	t.Run("HTTP error status", func(t *testing.T) {
		provider := geocoding.NewNominatimProviderWithClient(
			staticClient(http.StatusTooManyRequests, "slow down"), logger)
		_, err := provider.Geocode(ctx, "some address")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nominatim API returned status 429: slow down")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		provider := geocoding.NewNominatimProviderWithClient(staticClient(http.StatusOK, `{not json`), logger)
		_, err := provider.Geocode(ctx, "some address")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode nominatim response")
	})

	t.Run("invalid latitude in response", func(t *testing.T) {
		provider := geocoding.NewNominatimProviderWithClient(
			staticClient(http.StatusOK, `[{"lat":"north","lon":"30.5"}]`), logger)
		_, err := provider.Geocode(ctx, "some address")

		require.ErrorIs(t, err, geocoding.ErrNominatimInvalidCoords)
		assert.Contains(t, err.Error(), "lat")
	})

	t.Run("invalid longitude in response", func(t *testing.T) {
		provider := geocoding.NewNominatimProviderWithClient(
			staticClient(http.StatusOK, `[{"lat":"50.4","lon":""}]`), logger)
		_, err := provider.Geocode(ctx, "some address")

		require.ErrorIs(t, err, geocoding.ErrNominatimInvalidCoords)
		assert.Contains(t, err.Error(), "lon")
	})

	t.Run("HTTP client returns error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		_, err := provider.Geocode(ctx, "some address")

		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to execute geocoding request")
	})

	t.Run("context cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(t.Context())
		cancel()

		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, req.Context().Err()
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		_, err := provider.Geocode(cancelled, "some address")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNominatimProvider_AddressFallback(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()

	t.Run("fallback to village name when full address fails", func(t *testing.T) {
		var queries []string
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				query := req.URL.Query().Get("q")
				queries = append(queries, query)
				if query == "с. Грабовець" {
					return respond(http.StatusOK, `[{"lat":"49.1234","lon":"24.5678"}]`), nil
				}
				return respond(http.StatusOK, `[]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		location, err := provider.Geocode(ctx, "с. Грабовець, вул. Польова, 3")

		require.NoError(t, err)
		assert.InDelta(t, 49.1234, location.Lat(), 1e-9)
		assert.InDelta(t, 24.5678, location.Lng(), 1e-9)
		assert.Equal(t, []string{
			"с. Грабовець, вул. Польова, 3",
			"с. Грабовець, вул. Польова",
			"с. Грабовець",
		}, queries)
	})

	t.Run("success on first try with full address", func(t *testing.T) {
		requestCount := 0
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				requestCount++
				return respond(http.StatusOK, `[{"lat":"50.4501","lon":"30.5234"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		_, err := provider.Geocode(ctx, "м. Київ, вул. Хрещатик, 1")

		require.NoError(t, err)
		assert.Equal(t, 1, requestCount)
	})

	t.Run("all fallbacks fail", func(t *testing.T) {
		requestCount := 0
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				requestCount++
				return respond(http.StatusOK, `[]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		_, err := provider.Geocode(ctx, "с. Невідоме, вул. Невідома, 999")

		require.ErrorIs(t, err, geocoding.ErrNominatimEmptyResponse)
		assert.Equal(t, 3, requestCount)
	})

	t.Run("non-empty failure stops fallbacks", func(t *testing.T) {
		requestCount := 0
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				requestCount++
				return respond(http.StatusInternalServerError, "boom"), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		_, err := provider.Geocode(ctx, "a, b, c")

		require.Error(t, err)
		assert.Equal(t, 1, requestCount)
	})

	t.Run("single-part address no fallback", func(t *testing.T) {
		requestCount := 0
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				requestCount++
				return respond(http.StatusOK, `[]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, logger)
		_, err := provider.Geocode(ctx, "Івано-Франківськ")

		require.ErrorIs(t, err, geocoding.ErrNominatimEmptyResponse)
		assert.Equal(t, 1, requestCount)
	})
}
