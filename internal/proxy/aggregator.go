// Package proxy implements the xStocks edge service: it queries Kraken's
// public ticker endpoint pair by pair for the known tokenized equities,
// aggregates the results, and serves them in the feed shape the dashboard
// consumes. Kraken cannot classify these instruments itself, which is the
// whole reason this service exists.
package proxy

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/johnhenrypower/kraken-dashboard/internal/format"
	"github.com/johnhenrypower/kraken-dashboard/internal/infra"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
	"github.com/johnhenrypower/kraken-dashboard/internal/xstocks"
	"github.com/johnhenrypower/kraken-dashboard/pkg/safe"
)

// KnownPairs is the default set of tokenized-equity pairs listed on Kraken.
var KnownPairs = []string{
	"AAPLxUSD", "TSLAxUSD", "NVDAxUSD", "GOOGLxUSD", "AMZNxUSD",
	"MSFTxUSD", "METAxUSD", "NFLXxUSD", "AMDxUSD", "INTCxUSD",
	"COINxUSD", "HOODxUSD", "MSTRxUSD", "SPYxUSD", "QQQxUSD",
	"IWMxUSD", "GLDxUSD", "SLVxUSD", "GMExUSD",
}

// companyNames maps equity root tickers to display names.
var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"TSLA":  "Tesla Inc.",
	"NVDA":  "NVIDIA Corp.",
	"GOOGL": "Alphabet Inc.",
	"AMZN":  "Amazon.com",
	"MSFT":  "Microsoft Corp.",
	"META":  "Meta Platforms",
	"NFLX":  "Netflix Inc.",
	"AMD":   "AMD Inc.",
	"INTC":  "Intel Corp.",
	"COIN":  "Coinbase Global",
	"HOOD":  "Robinhood",
	"MSTR":  "MicroStrategy",
	"SPY":   "S&P 500 ETF",
	"QQQ":   "Nasdaq 100 ETF",
	"IWM":   "Russell 2000 ETF",
	"GLD":   "Gold ETF",
	"SLV":   "Silver ETF",
	"GME":   "GameStop Corp.",
}

const fetchRetries = 2

// TickerSource is the slice of the Kraken client the aggregator needs.
type TickerSource interface {
	TickerFor(ctx context.Context, pair string) (map[string]kraken.Ticker, error)
	Assets(ctx context.Context) (map[string]kraken.Asset, error)
}

// Aggregator builds the equity feed from per-pair ticker queries. Calls are
// paced through a rate limiter and guarded by a circuit breaker so a dead
// upstream fails the refresh fast instead of timing out on every pair.
type Aggregator struct {
	source     TickerSource
	pairs      []string
	configured bool
	limiter    *infra.RateLimiter
	breaker    *infra.Breaker
	backoff    infra.Backoff
	now        func() time.Time
}

// NewAggregator builds an Aggregator. Empty pairs selects KnownPairs;
// rate <= 0 defaults to 3 requests per second.
func NewAggregator(source TickerSource, pairs []string, rate float64, configured bool) *Aggregator {
	if len(pairs) == 0 {
		pairs = KnownPairs
	}
	if rate <= 0 {
		rate = 3
	}
	return &Aggregator{
		source:     source,
		pairs:      pairs,
		configured: configured,
		limiter:    infra.NewRateLimiter(5, rate),
		breaker:    infra.NewBreaker("kraken", 5, 30*time.Second),
		backoff:    infra.Backoff{Base: 500 * time.Millisecond, Max: 5 * time.Second},
		now:        time.Now,
	}
}

// Build fetches every known pair and assembles the feed. Pairs that fail stay
// out of the result; the feed is available as long as at least one pair
// produced data.
func (a *Aggregator) Build(ctx context.Context) xstocks.Feed {
	entries := make([]xstocks.Entry, 0, len(a.pairs))

	for _, pair := range a.pairs {
		entry, ok := a.fetchPair(ctx, pair)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].VolumeUSD > entries[j].VolumeUSD
	})

	var totalVolume float64
	for _, e := range entries {
		totalVolume += e.VolumeUSD
	}

	return xstocks.Feed{
		Configured:  a.configured,
		Available:   len(entries) > 0,
		Count:       len(entries),
		TotalVolume: totalVolume,
		XStocks:     entries,
		KnownPairs:  a.pairs,
		LastUpdated: a.now().UTC(),
	}
}

// CountListedAssets counts equity assets present in the public asset
// directory, for the /api/xstocks/count endpoint. Uses the simple trailing-x
// shape Kraken gives tokenized equities.
func (a *Aggregator) CountListedAssets(ctx context.Context) (int, error) {
	assets, err := a.source.Assets(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for symbol := range assets {
		if strings.HasSuffix(symbol, "x") && len(symbol) > 2 {
			count++
		}
	}
	return count, nil
}

// fetchPair queries one pair with bounded retries. Failures are logged and
// skipped; one dead pair never spoils the feed.
func (a *Aggregator) fetchPair(ctx context.Context, pair string) (xstocks.Entry, bool) {
	for attempt := 0; ; attempt++ {
		if !a.breaker.Allow() {
			slog.Warn("skipping pair, breaker open", slog.String("pair", pair))
			return xstocks.Entry{}, false
		}
		if err := a.limiter.Wait(ctx); err != nil {
			return xstocks.Entry{}, false
		}

		result, err := a.source.TickerFor(ctx, pair)
		if err == nil && len(result) > 0 {
			a.breaker.RecordSuccess()
			for pairKey, data := range result {
				return buildEntry(pair, pairKey, data), true
			}
		}
		a.breaker.RecordFailure()

		if attempt >= fetchRetries {
			slog.Warn("giving up on pair",
				slog.String("pair", pair), slog.Any("error", err))
			return xstocks.Entry{}, false
		}

		select {
		case <-ctx.Done():
			return xstocks.Entry{}, false
		case <-time.After(a.backoff.Delay(attempt)):
		}
	}
}

// buildEntry derives one feed entry from a raw ticker row. The symbol is the
// pair minus its quote leg ("AAPLxUSD" -> "AAPL").
func buildEntry(requested, pairKey string, data kraken.Ticker) xstocks.Entry {
	root := strings.TrimSuffix(requested, "xUSD")
	root = strings.TrimSuffix(root, "USD")

	volume24h := safe.FloatAt(data.V, 1)
	lastPrice := safe.FloatAt(data.C, 0)
	openPrice := safe.Float(data.O)

	company, ok := companyNames[root]
	if !ok {
		company = "Tokenized Equity"
	}

	return xstocks.Entry{
		Pair:      pairKey,
		Symbol:    root,
		Company:   company,
		Price:     lastPrice,
		Change24h: format.Change(openPrice, lastPrice),
		Volume24h: volume24h,
		VolumeUSD: volume24h * lastPrice,
		Trades24h: safe.IntAt(data.T, 1),
		High24h:   safe.FloatAt(data.H, 1),
		Low24h:    safe.FloatAt(data.L, 1),
	}
}
