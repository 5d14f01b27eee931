// Package kraken is a minimal client for the Kraken public REST API: the two
// unauthenticated endpoints the dashboard pipeline consumes, plus targeted
// per-pair ticker queries for the xStocks proxy.
package kraken

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Kraken public API root.
const DefaultBaseURL = "https://api.kraken.com/0/public"

// APIError is a 2xx response whose application-level error array was
// non-empty. Kraken reports problems as a list of "ESeverity:Reason" strings.
type APIError struct {
	Errors []string
}

func (e *APIError) Error() string {
	return strings.Join(e.Errors, ", ")
}

// envelope is the common Kraken response wrapper.
type envelope struct {
	Error  []string        `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Client talks to the Kraken public API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewClient builds a Client. Empty baseURL selects the production API; a nil
// timeout-free client is never used, transport defaults to 15s.
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetTimeout overrides the HTTP client timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http.Timeout = d
	}
}

// Assets fetches the full asset directory keyed by symbol.
func (c *Client) Assets(ctx context.Context) (map[string]Asset, error) {
	var out map[string]Asset
	if err := c.get(ctx, "/Assets", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch assets: %w", err)
	}
	return out, nil
}

// Tickers fetches the ticker snapshot for every tradable pair.
func (c *Client) Tickers(ctx context.Context) (map[string]Ticker, error) {
	var out map[string]Ticker
	if err := c.get(ctx, "/Ticker", nil, &out); err != nil {
		return nil, fmt.Errorf("fetch tickers: %w", err)
	}
	return out, nil
}

// TickerFor fetches the ticker snapshot for a single pair. The result is
// keyed by Kraken's canonical pair name, which may differ from the query.
func (c *Client) TickerFor(ctx context.Context, pair string) (map[string]Ticker, error) {
	var out map[string]Ticker
	if err := c.get(ctx, "/Ticker", url.Values{"pair": {pair}}, &out); err != nil {
		return nil, fmt.Errorf("fetch ticker %s: %w", pair, err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Error) > 0 {
		return &APIError{Errors: env.Error}
	}
	if len(env.Result) == 0 {
		return nil
	}
	return json.Unmarshal(env.Result, result)
}
