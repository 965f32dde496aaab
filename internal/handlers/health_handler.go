package handlers

import (
	"net/http"

	"debt-portal/internal/config"
	"debt-portal/internal/models"
	"debt-portal/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness payload plus an upstream reachability snapshot
type HealthResponse struct {
	Status          string                    `json:"status"`
	Message         string                    `json:"message"`
	CacheConfig     CacheConfigSummary        `json:"cacheConfig"`
	CacheConnection models.ConnectivityResult `json:"cacheConnection"`
	FallbackStore   FallbackStoreStatus       `json:"fallbackStore"`
}

// CacheConfigSummary is the non-secret part of the upstream configuration
type CacheConfigSummary struct {
	Host                   string `json:"host"`
	Port                   int    `json:"port"`
	Namespace              string `json:"namespace"`
	RESTEndpointConfigured bool   `json:"restEndpointConfigured"`
}

type FallbackStoreStatus struct {
	Driver  string `json:"driver"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// DatabaseChecker is satisfied by *database.DB.
type DatabaseChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	config   *config.Config
	prober   services.UpstreamProberInterface
	database DatabaseChecker
}

// NewHealthCheckHandler builds the handler. db is nil when the fallback
// store is in memory.
func NewHealthCheckHandler(cfg *config.Config, prober services.UpstreamProberInterface, db DatabaseChecker) *HealthCheckHandler {
	return &HealthCheckHandler{config: cfg, prober: prober, database: db}
}

// HealthCheck always answers 200; an unreachable upstream or a failing
// fallback database is reported in the body, not as a failure.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	upstream := &h.config.Upstream
	connection := h.prober.Probe(c.Request().Context())

	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Server is running",
		CacheConfig: CacheConfigSummary{
			Host:                   upstream.Host,
			Port:                   upstream.Port,
			Namespace:              upstream.Namespace,
			RESTEndpointConfigured: upstream.IsConfigured(),
		},
		CacheConnection: connection,
		FallbackStore:   h.fallbackStoreStatus(),
	})
}

func (h *HealthCheckHandler) fallbackStoreStatus() FallbackStoreStatus {
	status := FallbackStoreStatus{Driver: h.config.Fallback.Driver, Healthy: true}
	if h.database == nil {
		return status
	}
	if err := h.database.HealthCheck(); err != nil {
		status.Healthy = false
		status.Error = err.Error()
	}
	return status
}
