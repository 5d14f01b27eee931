package domain

import "time"

// Snapshot is the immutable view produced by one successful poll cycle.
// A cycle either replaces the whole snapshot or nothing; the dashboard
// never sees a half-updated view.
type Snapshot struct {
	AssetCounts      AssetCounts      `json:"assetCounts"`
	VolumeByCategory VolumeByCategory `json:"volumeByCategory"`
	TopMovers        TopMovers        `json:"topMovers"`
	XStocksAvailable bool             `json:"xstocksAvailable"`
	LastUpdated      time.Time        `json:"lastUpdated"`
}
