package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/domain/gateway"
)

// NominatimClient resolves addresses against a Nominatim-compatible
// /search endpoint.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewNominatimClient(baseURL, userAgent string, client *http.Client) *NominatimClient {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &NominatimClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

// Nominatim serializes lat/lon as strings in its JSON payload.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup resolves one address. It returns gateway.ErrNoResult when the
// provider finds no match, and a wrapped error on transport or decode
// failures.
func (c *NominatimClient) Lookup(ctx context.Context, address string) (entity.Coordinates, error) {
	if strings.TrimSpace(address) == "" {
		return entity.Coordinates{}, gateway.ErrNoResult
	}

	resp, err := c.doWithRetry(ctx, address)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode %q: decode response: %w", address, err)
	}

	if len(results) == 0 {
		return entity.Coordinates{}, gateway.ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode %q: invalid latitude %q", address, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entity.Coordinates{}, fmt.Errorf("geocode %q: invalid longitude %q", address, results[0].Lon)
	}

	return entity.Coordinates{Lat: lat, Lon: lon}, nil
}

func (c *NominatimClient) newRequest(ctx context.Context, address string) (*http.Request, error) {
	endpoint := c.baseURL + "/search"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return req, nil
}

type httpStatusError struct {
	Code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// doWithRetry retries transient failures (network errors, 429, 5xx) with
// exponential backoff while respecting context cancellation.
func (c *NominatimClient) doWithRetry(ctx context.Context, address string) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 250 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := c.newRequest(ctx, address)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err == nil {
			if resp.StatusCode == http.StatusOK {
				return resp, nil
			}
			resp.Body.Close()
			err = &httpStatusError{Code: resp.StatusCode}
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests,
				http.StatusInternalServerError,
				http.StatusBadGateway,
				http.StatusServiceUnavailable,
				http.StatusGatewayTimeout:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
