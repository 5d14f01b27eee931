// Package poller owns the fetch cycle: it polls the Kraken public API and
// the xStocks proxy on a fixed interval, runs the aggregation pipeline, and
// publishes the resulting snapshot as a single atomic swap. A failed cycle
// leaves the previously published view untouched.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/johnhenrypower/kraken-dashboard/internal/aggregate"
	"github.com/johnhenrypower/kraken-dashboard/internal/classify"
	"github.com/johnhenrypower/kraken-dashboard/internal/domain"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
	"github.com/johnhenrypower/kraken-dashboard/internal/xstocks"
)

// State is the controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateSettled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateSettled:
		return "settled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarketSource supplies the two primary Kraken payloads. Failure of either
// fetch fails the whole cycle.
type MarketSource interface {
	Assets(ctx context.Context) (map[string]kraken.Asset, error)
	Tickers(ctx context.Context) (map[string]kraken.Ticker, error)
}

// EquitySource supplies the tokenized-equity feed. It never fails a cycle:
// implementations downgrade errors to an unavailable feed.
type EquitySource interface {
	Fetch(ctx context.Context) xstocks.Feed
}

// DefaultInterval is the reference polling cadence.
const DefaultInterval = 60 * time.Second

// Controller drives poll cycles and holds the last good view. Cycles are
// idempotent and independent; overlapping runs are tolerated, the last one to
// settle wins under the atomic-replace rule.
type Controller struct {
	market   MarketSource
	equities EquitySource
	policy   *classify.Policy
	interval time.Duration
	now      func() time.Time

	view     atomic.Pointer[domain.Snapshot]
	onUpdate func(*domain.Snapshot)

	mu      sync.Mutex
	state   State
	lastErr error

	refresh chan struct{}
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New builds a Controller. A non-positive interval selects DefaultInterval.
func New(market MarketSource, equities EquitySource, policy *classify.Policy, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		market:   market,
		equities: equities,
		policy:   policy,
		interval: interval,
		now:      time.Now,
		state:    StateIdle,
		refresh:  make(chan struct{}, 1),
	}
}

// OnUpdate registers a callback invoked with every newly published snapshot.
// Must be set before Start.
func (c *Controller) OnUpdate(fn func(*domain.Snapshot)) {
	c.onUpdate = fn
}

// Start runs an immediate first cycle, then re-polls on the fixed interval
// and on manual refresh triggers until the context ends or Stop is called.
func (c *Controller) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.RunOnce(ctx)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("poller stopped")
				return
			case <-ticker.C:
				c.RunOnce(ctx)
			case <-c.refresh:
				c.RunOnce(ctx)
			}
		}
	}()
}

// Stop cancels the polling loop and waits for it to exit.
func (c *Controller) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.wg.Wait()
	}
}

// Refresh requests a manual cycle. Non-blocking; a trigger already pending
// is enough, and an in-flight cycle is never canceled.
func (c *Controller) Refresh() {
	select {
	case c.refresh <- struct{}{}:
	default:
	}
}

// View returns the last successfully published snapshot, nil before the
// first settled cycle.
func (c *Controller) View() *domain.Snapshot {
	return c.view.Load()
}

// Status reports the current state and the last cycle error (nil after a
// settled cycle).
func (c *Controller) Status() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.lastErr
}

// RunOnce executes a single fetch-aggregate-publish cycle synchronously.
// The three upstream fetches run concurrently; the cycle waits for all of
// them. Primary-source failure fails the cycle and keeps the prior view.
func (c *Controller) RunOnce(ctx context.Context) {
	c.setState(StateFetching, nil)

	var (
		assets    map[string]kraken.Asset
		tickers   map[string]kraken.Ticker
		feed      xstocks.Feed
		assetsErr error
		tickerErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		assets, assetsErr = c.market.Assets(ctx)
	}()
	go func() {
		defer wg.Done()
		tickers, tickerErr = c.market.Tickers(ctx)
	}()
	go func() {
		defer wg.Done()
		feed = c.equities.Fetch(ctx)
	}()
	wg.Wait()

	if assetsErr != nil {
		c.fail(assetsErr)
		return
	}
	if tickerErr != nil {
		c.fail(tickerErr)
		return
	}

	counts := aggregate.CountAssets(assets, c.policy)
	summary := aggregate.SummarizeTickers(tickers, c.policy)
	snap := aggregate.Merge(counts, summary, feed, c.now())

	c.view.Store(snap)
	c.setState(StateSettled, nil)
	if c.onUpdate != nil {
		c.onUpdate(snap)
	}

	slog.Info("poll cycle settled",
		slog.Int("assets", counts.Total()),
		slog.Float64("total_volume_usd", snap.VolumeByCategory.Total),
		slog.Bool("xstocks_available", feed.Available),
	)
}

func (c *Controller) fail(err error) {
	c.setState(StateFailed, err)
	slog.Error("poll cycle failed", slog.Any("error", err))
}

func (c *Controller) setState(s State, err error) {
	c.mu.Lock()
	c.state = s
	c.lastErr = err
	c.mu.Unlock()
}
