// Package aggregate is the classification-and-aggregation pipeline: it folds
// raw Kraken payloads and the xStocks feed into the per-cycle snapshot. All
// functions are single-pass over immutable inputs and carry no state between
// cycles.
package aggregate

import (
	"github.com/johnhenrypower/kraken-dashboard/internal/classify"
	"github.com/johnhenrypower/kraken-dashboard/internal/domain"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
)

// CountAssets tallies the asset directory into per-category counts. Entries
// whose asset class is not "currency" (or is missing) are skipped before
// classification runs.
func CountAssets(assets map[string]kraken.Asset, policy *classify.Policy) domain.AssetCounts {
	var counts domain.AssetCounts
	for symbol, asset := range assets {
		if asset.Aclass != kraken.AssetClassCurrency {
			continue
		}
		switch policy.ClassifyAsset(symbol) {
		case domain.CategoryXStock:
			counts.XStocks++
		case domain.CategoryStablecoin:
			counts.Stablecoins++
		default:
			counts.Crypto++
		}
	}
	return counts
}
