package proxy

import (
	"net/http"

	"github.com/johnhenrypower/kraken-dashboard/pkg/httpx"
)

// NewServer wires the proxy's routes behind the CORS and request-id
// middleware. Unknown paths return 404 {"error":"Not found"}.
func NewServer(agg *Aggregator, configured bool) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"status":     "ok",
			"configured": configured,
		})
	})

	mux.HandleFunc("GET /api/xstocks", func(w http.ResponseWriter, r *http.Request) {
		feed := agg.Build(r.Context())
		httpx.WriteJSON(w, http.StatusOK, feed)
	})

	mux.HandleFunc("GET /api/xstocks/count", func(w http.ResponseWriter, r *http.Request) {
		count, err := agg.CountListedAssets(r.Context())
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"count":      count,
			"configured": configured,
		})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "Not found")
	})

	return httpx.RequestID(httpx.CORS(mux))
}
