package domain

// Category is the product bucket a Kraken asset or trading pair falls into.
// Classification is total: every symbol maps to exactly one Category.
type Category string

const (
	CategoryCrypto     Category = "crypto"
	CategoryStablecoin Category = "stablecoin"
	CategoryXStock     Category = "xstock"
)

// AssetCounts holds the number of distinct listed assets per category.
// Field names mirror the dashboard stat cards.
type AssetCounts struct {
	Crypto      int `json:"crypto"`
	XStocks     int `json:"xstocks"`
	Stablecoins int `json:"stablecoins"`
}

// Total returns the count of all classified assets.
func (c AssetCounts) Total() int {
	return c.Crypto + c.XStocks + c.Stablecoins
}

// VolumeByCategory holds 24h USD trading volume per category.
// Total is always recomputed from the parts, never carried independently.
type VolumeByCategory struct {
	Crypto     float64 `json:"crypto"`
	XStock     float64 `json:"xstock"`
	Stablecoin float64 `json:"stablecoin"`
	Total      float64 `json:"total"`
}

// Recompute refreshes Total from the per-category parts and returns the receiver.
func (v VolumeByCategory) Recompute() VolumeByCategory {
	v.Total = v.Crypto + v.XStock + v.Stablecoin
	return v
}
