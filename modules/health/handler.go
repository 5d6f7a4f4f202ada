package health

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"marketing-poster-server/modules/common/response"
	"marketing-poster-server/modules/common/stats"
)

const ServiceName = "marketing-poster-server"

// MetricsResponse - GET /metrics body
type MetricsResponse struct {
	Uptime    string                  `json:"uptime"`
	StartTime time.Time               `json:"startTime"`
	Routes    map[string]stats.Counts `json:"routes"`
}

type Handler struct {
	stats     stats.Recorder
	startTime time.Time
	logger    zerolog.Logger
}

func NewHandler(recorder stats.Recorder, logger zerolog.Logger) *Handler {
	return &Handler{
		stats:     recorder,
		startTime: time.Now(),
		logger:    logger,
	}
}

// RegisterRoutes wires health and metrics endpoints.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/metrics", h.Metrics).Methods(http.MethodGet)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	_ = response.JSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// Metrics - uptime plus success/failure counts per generation route
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	routes, err := h.stats.Snapshot(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("❌ [Metrics] failed to read counters")
		_ = response.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "metrics unavailable",
		})
		return
	}

	_ = response.JSON(w, http.StatusOK, MetricsResponse{
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		StartTime: h.startTime,
		Routes:    routes,
	})
}
