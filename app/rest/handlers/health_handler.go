package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports storage reachability.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	storage Pinger
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler. storage may be nil when
// the in-memory backend is active.
func NewHealthHandler(storage Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		logger:  logger.With("component", "health_handler"),
		started: time.Now(),
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Storage string `json:"storage"`
}

// HealthCheck handles GET /v1/health. Storage unreachability degrades the
// status without failing the endpoint itself.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	resp := healthResponse{
		Status:  "healthy",
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Storage: "ok",
	}

	status := http.StatusOK
	if h.storage != nil {
		if err := h.storage.HealthCheck(c.Request().Context()); err != nil {
			h.logger.Error("storage health check failed", "error", err)
			resp.Status = "degraded"
			resp.Storage = "unreachable"
			status = http.StatusServiceUnavailable
		}
	} else {
		resp.Storage = "memory"
	}

	return c.JSON(status, resp)
}

// ReadinessCheck handles GET /v1/ready. Unlike liveness, readiness
// requires the storage backend to answer.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	if h.storage != nil {
		if err := h.storage.HealthCheck(c.Request().Context()); err != nil {
			h.logger.Error("readiness check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "not_ready",
				"error":  "storage connection failed",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

// LivenessCheck handles GET /v1/live.
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}
