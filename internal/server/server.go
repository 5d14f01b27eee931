// Package server exposes the aggregated market view to browser clients:
// a JSON summary endpoint, a status/refresh surface for the retry affordance,
// and a WebSocket push channel.
package server

import (
	"net/http"

	"github.com/johnhenrypower/kraken-dashboard/internal/domain"
	"github.com/johnhenrypower/kraken-dashboard/internal/poller"
	"github.com/johnhenrypower/kraken-dashboard/pkg/httpx"
)

// summaryResponse wraps the published snapshot. The static xStocks list is
// attached only when the live feed is down, and stays outside the snapshot
// so it can never be confused with aggregated data.
type summaryResponse struct {
	*domain.Snapshot
	StaticXStocks []domain.Mover `json:"staticXStocks,omitempty"`
}

// statusResponse describes the refresh controller for the error banner.
type statusResponse struct {
	State string `json:"state"`
	Error string `json:"error,omitempty"`
}

// NewServer wires the dashboard API around the refresh controller and the
// WebSocket hub.
func NewServer(ctrl *poller.Controller, hub *Hub) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/summary", func(w http.ResponseWriter, r *http.Request) {
		snap := ctrl.View()
		if snap == nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "no data yet")
			return
		}
		resp := summaryResponse{Snapshot: snap}
		if !snap.XStocksAvailable {
			resp.StaticXStocks = StaticXStocks()
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("GET /api/status", func(w http.ResponseWriter, r *http.Request) {
		state, err := ctrl.Status()
		resp := statusResponse{State: state.String()}
		if err != nil {
			resp.Error = err.Error()
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	})

	mux.HandleFunc("POST /api/refresh", func(w http.ResponseWriter, r *http.Request) {
		ctrl.Refresh()
		httpx.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "refresh requested"})
	})

	mux.HandleFunc("GET /ws", hub.Handler())

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	})

	return httpx.RequestID(httpx.CORS(mux))
}
