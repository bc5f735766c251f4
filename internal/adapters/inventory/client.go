// Package inventory fetches the current inventory record set from the
// upstream API. The source is external: records are read-only to the
// pipeline, and an unreachable source degrades to a fixed fallback
// dataset instead of failing the run.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/okian/shelfwatch/internal/domain/model"
)

const defaultTimeout = 10 * time.Second

// Source yields the inventory records a reconciliation run works from.
type Source interface {
	// Fetch performs one synchronous fetch. It fails with
	// ErrSourceUnavailable when the endpoint cannot be reached or
	// returns an unusable payload.
	Fetch(ctx context.Context) ([]model.InventoryRecord, error)
}

// Client implements Source against the HTTP inventory API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

var _ Source = (*Client)(nil)

// New creates a Client for the given endpoint URL.
func New(apiURL string, opts ...Option) (*Client, error) {
	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return nil, errors.New("inventory api url required")
	}
	c := &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch performs a one-shot GET against the inventory endpoint. There
// is no retry loop; the caller's fallback already provides forward
// progress. Malformed records are rejected with ErrMalformedRecord and
// never silently skipped.
func (c *Client) Fetch(ctx context.Context) ([]model.InventoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var records []model.InventoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSourceUnavailable, err)
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedRecord, rec.ID, err)
		}
	}
	return records, nil
}

// FetchWithFallback fetches from the live endpoint and substitutes the
// fallback dataset on ErrSourceUnavailable. The returned degraded flag
// tells the caller the data is the demo fallback, not live inventory;
// operators must be warned, since stale data is otherwise invisible.
// Malformed live data still fails: fallback only masks transport-level
// unavailability.
func (c *Client) FetchWithFallback(ctx context.Context) (records []model.InventoryRecord, degraded bool, err error) {
	records, err = c.Fetch(ctx)
	if err == nil {
		return records, false, nil
	}
	if errors.Is(err, ErrSourceUnavailable) {
		return Fallback(), true, nil
	}
	return nil, false, err
}
