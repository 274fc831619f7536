package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// Client is the HTTP implementation of Provider. Requests are rate limited
// so bursts of searches stay inside the provider's quota.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a provider client from configuration
func NewClient(cfg config.ProviderConfig, apiKey string) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     apiKey,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
}

// searchRequest is the wire shape of a contact search
type searchRequest struct {
	Filters *filters.Filters `json:"filters"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset,omitempty"`
}

// searchResponse is the wire shape of a search result page
type searchResponse struct {
	Contacts []prospect.Prospect `json:"contacts"`
	Total    int                 `json:"total"`
}

// Search fetches prospects matching the filters. Transport failures and
// server errors map to ErrProviderUnavailable so the caller can offer a
// retry; zero matches is a successful empty slice.
func (c *Client) Search(ctx context.Context, f *filters.Filters) ([]prospect.Prospect, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	limit := f.Limit
	if limit <= 0 || limit > c.maxResults {
		limit = c.maxResults
	}

	body, err := json.Marshal(searchRequest{Filters: f, Limit: limit, Offset: f.Offset})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contacts/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("provider rejected API key (status %d)", resp.StatusCode)
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("provider returned unexpected status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if result.Contacts == nil {
		return []prospect.Prospect{}, nil
	}
	return result.Contacts, nil
}
