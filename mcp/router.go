package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flightai/csbot/mcp/internal/recovery"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// healthReporter is the view of the backend checker the router needs.
type healthReporter interface {
	IsHealthy() bool
	LastError() string
}

type healthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend,omitempty"`
	Timestamp string `json:"timestamp"`
}

// newRouter mounts the MCP endpoint next to the operational endpoints:
//
//	/mcp         streamable MCP transport
//	/api/health  cached backend health, always 200
//	/metrics     Prometheus exposition of the client metrics
func newRouter(mcpHandler http.Handler, hc healthReporter) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	router.Handle("/mcp", mcpHandler)
	router.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "unhealthy", Timestamp: time.Now().Format(time.RFC3339)}
		if hc.IsHealthy() {
			resp.Status = "healthy"
		} else {
			resp.Backend = hc.LastError()
		}
		writeJSON(w, http.StatusOK, resp)
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
