package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/johnhenrypower/kraken-dashboard/internal/classify"
	"github.com/johnhenrypower/kraken-dashboard/internal/kraken"
	"github.com/johnhenrypower/kraken-dashboard/internal/poller"
	"github.com/johnhenrypower/kraken-dashboard/internal/xstocks"
)

type stubMarket struct {
	tickersErr error
}

func (s *stubMarket) Assets(ctx context.Context) (map[string]kraken.Asset, error) {
	return map[string]kraken.Asset{
		"XXBT": {Aclass: "currency"},
		"USDT": {Aclass: "currency"},
	}, nil
}

func (s *stubMarket) Tickers(ctx context.Context) (map[string]kraken.Ticker, error) {
	if s.tickersErr != nil {
		return nil, s.tickersErr
	}
	return map[string]kraken.Ticker{
		"USDTZUSD": {V: []string{"0", "10"}, C: []string{"1.0", "0"}, O: "1.0", T: []int64{0, 5}},
	}, nil
}

type stubEquities struct{ feed xstocks.Feed }

func (s *stubEquities) Fetch(ctx context.Context) xstocks.Feed { return s.feed }

func newTestController(market poller.MarketSource, feed xstocks.Feed) *poller.Controller {
	return poller.New(market, &stubEquities{feed: feed}, classify.DefaultPolicy(), time.Minute)
}

func TestSummary_NoDataYet(t *testing.T) {
	ctrl := newTestController(&stubMarket{}, xstocks.Unavailable())
	srv := httptest.NewServer(NewServer(ctrl, NewHub()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/summary")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 before first settled cycle", resp.StatusCode)
	}
}

func TestSummary_IncludesStaticFallbackWhenFeedDown(t *testing.T) {
	ctrl := newTestController(&stubMarket{}, xstocks.Unavailable())
	ctrl.RunOnce(context.Background())

	srv := httptest.NewServer(NewServer(ctrl, NewHub()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/summary")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		VolumeByCategory struct {
			Stablecoin float64 `json:"stablecoin"`
			XStock     float64 `json:"xstock"`
			Total      float64 `json:"total"`
		} `json:"volumeByCategory"`
		StaticXStocks []struct {
			Symbol string   `json:"symbol"`
			Price  *float64 `json:"price"`
		} `json:"staticXStocks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	if len(body.StaticXStocks) != 5 {
		t.Fatalf("staticXStocks = %d entries, want 5", len(body.StaticXStocks))
	}
	if body.StaticXStocks[0].Price != nil {
		t.Error("placeholder entries must carry null metrics")
	}
	// Placeholder never leaks into totals.
	if body.VolumeByCategory.XStock != 0 || body.VolumeByCategory.Total != body.VolumeByCategory.Stablecoin {
		t.Errorf("placeholder leaked into volumes: %+v", body.VolumeByCategory)
	}
}

func TestSummary_OmitsStaticFallbackWhenFeedUp(t *testing.T) {
	feed := xstocks.Feed{Available: true, Count: 1, TotalVolume: 100,
		XStocks: []xstocks.Entry{{Pair: "NVDAxUSD", Symbol: "NVDA", VolumeUSD: 100}}}
	ctrl := newTestController(&stubMarket{}, feed)
	ctrl.RunOnce(context.Background())

	srv := httptest.NewServer(NewServer(ctrl, NewHub()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/summary")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if _, present := body["staticXStocks"]; present {
		t.Error("staticXStocks should be omitted while the live feed is up")
	}
}

func TestStatus_ReportsFailure(t *testing.T) {
	market := &stubMarket{tickersErr: errors.New("EService:Unavailable")}
	ctrl := newTestController(market, xstocks.Unavailable())
	ctrl.RunOnce(context.Background())

	srv := httptest.NewServer(NewServer(ctrl, NewHub()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		State string `json:"state"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.State != "failed" {
		t.Errorf("state = %q, want failed", body.State)
	}
	if !strings.Contains(body.Error, "EService:Unavailable") {
		t.Errorf("error = %q, want upstream message surfaced", body.Error)
	}
}

func TestRefresh_Accepted(t *testing.T) {
	ctrl := newTestController(&stubMarket{}, xstocks.Unavailable())
	srv := httptest.NewServer(NewServer(ctrl, NewHub()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/refresh", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want 202", resp.StatusCode)
	}
}

func TestHub_BroadcastAndDisconnect(t *testing.T) {
	hub := NewHub()
	if hub.ClientCount() != 0 {
		t.Fatal("expected empty hub")
	}
	// Broadcasting with no clients is a no-op, not a panic.
	hub.Broadcast(nil)
}
