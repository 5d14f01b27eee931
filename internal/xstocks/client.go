package xstocks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client fetches the equity feed from the edge proxy. Fetch never returns an
// error: the feed is deliberately isolated so a proxy outage degrades to an
// unavailable result instead of failing the caller's poll cycle.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a feed client for the proxy at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetTimeout overrides the HTTP client timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.http.Timeout = d
	}
}

// Fetch retrieves the current feed, downgrading any failure to Unavailable.
func (c *Client) Fetch(ctx context.Context) Feed {
	feed, err := c.fetch(ctx)
	if err != nil {
		slog.Warn("xstocks feed unavailable", slog.Any("error", err))
		return Unavailable()
	}
	return feed
}

func (c *Client) fetch(ctx context.Context) (Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/xstocks", nil)
	if err != nil {
		return Feed{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Feed{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Feed{}, fmt.Errorf("proxy status %d", resp.StatusCode)
	}

	var feed Feed
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return Feed{}, fmt.Errorf("decode feed: %w", err)
	}
	return feed, nil
}
