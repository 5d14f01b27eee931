package aggregate

import (
	"time"

	"github.com/johnhenrypower/kraken-dashboard/internal/domain"
	"github.com/johnhenrypower/kraken-dashboard/internal/xstocks"
)

// Merge reconciles the two independent sources into one immutable snapshot:
// asset counts and crypto/stablecoin figures from the public API, equity
// figures from the proxy feed. An unavailable feed contributes zero volume,
// an empty movers list and leaves the asset-derived xStock count in place.
func Merge(counts domain.AssetCounts, summary TickerSummary, feed xstocks.Feed, now time.Time) *domain.Snapshot {
	if feed.Available && feed.Count > 0 {
		// The public asset directory cannot express the true xStock
		// population; the proxy's count is authoritative when present.
		counts.XStocks = feed.Count
	}

	volumes := domain.VolumeByCategory{
		Crypto:     summary.CryptoVolume,
		Stablecoin: summary.StablecoinVolume,
	}
	if feed.Available {
		volumes.XStock = feed.TotalVolume
	}

	return &domain.Snapshot{
		AssetCounts:      counts,
		VolumeByCategory: volumes.Recompute(),
		TopMovers: domain.TopMovers{
			Crypto:     summary.CryptoMovers,
			XStock:     equityMovers(feed),
			Stablecoin: summary.StablecoinMovers,
		},
		XStocksAvailable: feed.Available,
		LastUpdated:      now,
	}
}

// equityMovers reshapes the feed's ranked entries into the common mover form.
// Field renames only; the proxy already computed and sorted the numbers.
func equityMovers(feed xstocks.Feed) []domain.Mover {
	entries := feed.XStocks
	if len(entries) > domain.MoversPerCategory {
		entries = entries[:domain.MoversPerCategory]
	}
	movers := make([]domain.Mover, 0, len(entries))
	for _, x := range entries {
		movers = append(movers, domain.Mover{
			Pair:      x.Pair,
			Symbol:    x.Symbol,
			Company:   x.Company,
			VolumeUSD: domain.Float(x.VolumeUSD),
			Price:     domain.Float(x.Price),
			ChangePct: domain.Float(x.Change24h),
			Trades:    int(x.Trades24h),
			High:      x.High24h,
			Low:       x.Low24h,
		})
	}
	return movers
}
