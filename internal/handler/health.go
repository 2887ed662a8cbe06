package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/nettoyage-lausanne/internal/middleware"
	"github.com/deppfellow/nettoyage-lausanne/internal/server"
)

const defaultPingTimeout = 5 * time.Second

// HealthHandler exposes an endpoint uptime monitors and load balancers use
// to verify the service is alive and its document store is reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status and dependency checks.
//
// It returns:
// - 200 OK if the store answers a ping
// - 503 Service Unavailable if it does not, or if there is no store
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	// ---------------- Database connectivity check ----------------------------
	dbStart := time.Now()

	if h.server.DB == nil {
		checks["database"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  "not configured",
		}
		isHealthy = false

		logger.Warn().Msg("database health check skipped, no store configured")
	} else {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.pingTimeout())
		defer cancel()

		if err := h.server.DB.Ping(ctx); err != nil {
			checks["database"] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(dbStart).String(),
				"error":         err.Error(),
			}
			isHealthy = false

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			h.recordEvent(map[string]interface{}{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": time.Since(dbStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			checks["database"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(dbStart).String(),
				"name":          h.server.DB.Name(),
			}

			logger.Info().
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check passed")
		}
	}

	// ---------------- Overall status + response ------------------------------
	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) pingTimeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return defaultPingTimeout
}

// recordEvent sends a HealthCheckError custom event when New Relic is enabled.
func (h *HealthHandler) recordEvent(params map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", params)
}
