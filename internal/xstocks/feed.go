// Package xstocks defines the tokenized-equity feed contract shared by the
// edge proxy (which produces it) and the dashboard (which consumes it).
package xstocks

import "time"

// Entry is one tokenized-equity instrument with its 24h stats.
type Entry struct {
	Pair      string  `json:"pair"`
	Symbol    string  `json:"symbol"`
	Company   string  `json:"company"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change24h"`
	Volume24h float64 `json:"volume24h"`
	VolumeUSD float64 `json:"volumeUSD"`
	Trades24h int64   `json:"trades24h"`
	High24h   float64 `json:"high24h"`
	Low24h    float64 `json:"low24h"`
}

// Feed is the proxy's /api/xstocks payload. Available is false when the
// proxy reached no usable upstream data; consumers must then fall back to
// zero/empty equity figures without failing their own cycle.
type Feed struct {
	Configured  bool      `json:"configured"`
	Available   bool      `json:"available"`
	Count       int       `json:"count"`
	TotalVolume float64   `json:"totalVolume"`
	XStocks     []Entry   `json:"xstocks"`
	KnownPairs  []string  `json:"knownPairs"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Unavailable is the degraded feed used when the proxy cannot be reached.
func Unavailable() Feed {
	return Feed{Available: false, TotalVolume: 0, XStocks: nil}
}
