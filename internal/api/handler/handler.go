// Package handler provides HTTP handlers for all API endpoints.
// Tournament lookups go through the aggregator service; everything else is
// static or derived from configuration.
package handler

import (
	"net/http"

	"github.com/albapepper/sportsagg/internal/aggregator"
	"github.com/albapepper/sportsagg/internal/api/respond"
	"github.com/albapepper/sportsagg/internal/config"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc *aggregator.Service
	cfg *config.Config
}

// New creates a Handler with shared dependencies.
func New(svc *aggregator.Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// Root serves API info at /api.
// @Summary API root info
// @Description Returns API name, version, data mode and available endpoints.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	mode := aggregator.ModeMock
	if h.svc.Live() {
		mode = aggregator.ModeAPI
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Sports Tournament Aggregator API",
		"version": "1.0.0",
		"status":  "running",
		"mode":    mode,
		"docs":    "/docs/",
		"endpoints": []string{
			"/api/tournaments/{sport}",
			"/api/sports",
			"/api/health",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns health status, the current time and the service time zone.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: h.svc.Now().Format(timestampLayout),
		Timezone:  config.TimezoneName,
	})
}

// HealthResponse is the /api/health body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Timezone  string `json:"timezone"`
}

// ISO-8601 with microseconds and a numeric zone offset.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"
