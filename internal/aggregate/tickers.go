package aggregate

import (
	"sort"

	"github.com/johnhenrypower/kraken-dashboard/internal/classify"
	"github.com/johnhenrypower/kraken-dashboard/internal/domain"
	"github.com/johnhenrypower/kraken-dashboard/internal/format"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
	"github.com/johnhenrypower/kraken-dashboard/pkg/safe"
)

// TickerSummary is the ticker aggregator's output: per-category USD volume
// totals and ranked mover candidates for the crypto and stablecoin buckets.
// xStock pairs are deliberately absent; equities come exclusively from the
// proxy feed so they are never double counted.
type TickerSummary struct {
	CryptoVolume     float64
	StablecoinVolume float64
	CryptoMovers     []domain.Mover
	StablecoinMovers []domain.Mover
}

// SummarizeTickers runs one pass over the raw ticker snapshot. Pairs not
// quoted in USD are excluded entirely. Malformed numeric fields parse to
// zero, so a broken row still contributes a zero-volume entry rather than
// aborting the batch.
//
// Pairs are visited in sorted key order so equal-volume entries rank
// deterministically; the final per-category sort is stable.
func SummarizeTickers(tickers map[string]kraken.Ticker, policy *classify.Policy) TickerSummary {
	var summary TickerSummary

	names := make([]string, 0, len(tickers))
	for name := range tickers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, pairName := range names {
		if !policy.IsUSDPair(pairName) {
			continue
		}
		category := policy.ClassifyPair(pairName)
		if category == domain.CategoryXStock {
			continue
		}

		data := tickers[pairName]
		volume24h := safe.FloatAt(data.V, 1)
		lastPrice := safe.FloatAt(data.C, 0)
		openPrice := safe.Float(data.O)
		volumeUSD := volume24h * lastPrice

		mover := domain.Mover{
			Pair:      pairName,
			Symbol:    policy.ExtractBaseAsset(pairName),
			VolumeUSD: domain.Float(volumeUSD),
			Price:     domain.Float(lastPrice),
			ChangePct: domain.Float(format.Change(openPrice, lastPrice)),
			Trades:    int(safe.IntAt(data.T, 1)),
			High:      safe.FloatAt(data.H, 1),
			Low:       safe.FloatAt(data.L, 1),
		}

		if category == domain.CategoryStablecoin {
			summary.StablecoinVolume += volumeUSD
			summary.StablecoinMovers = append(summary.StablecoinMovers, mover)
		} else {
			summary.CryptoVolume += volumeUSD
			summary.CryptoMovers = append(summary.CryptoMovers, mover)
		}
	}

	summary.CryptoMovers = rankMovers(summary.CryptoMovers)
	summary.StablecoinMovers = rankMovers(summary.StablecoinMovers)
	return summary
}

// rankMovers stable-sorts candidates by descending USD volume and truncates
// to the top-movers cap. Ties keep their input order.
func rankMovers(movers []domain.Mover) []domain.Mover {
	sort.SliceStable(movers, func(i, j int) bool {
		return *movers[i].VolumeUSD > *movers[j].VolumeUSD
	})
	if len(movers) > domain.MoversPerCategory {
		movers = movers[:domain.MoversPerCategory]
	}
	return movers
}
