package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPClient is the part of *http.Client the REST providers need.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// statusError carries a non-200 answer from a REST provider.
type statusError struct {
	provider string
	code     int
	body     string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.provider, e.code, e.body)
}

// getJSON issues a GET to base with the given query and headers and decodes
// a 200 response body into dst.
func getJSON(
	ctx context.Context,
	client HTTPClient,
	log *slog.Logger,
	provider, base string,
	query url.Values,
	header http.Header,
	dst any,
) error {
	reqURL, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.ErrorContext(ctx, "Geocoding API error", "provider", provider, "status", resp.StatusCode)
		return &statusError{provider: provider, code: resp.StatusCode, body: string(body)}
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", provider, err)
	}
	return nil
}
