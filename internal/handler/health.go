package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/cpf-validator/internal/cpf"
	"github.com/deppfellow/cpf-validator/internal/middleware"
	"github.com/deppfellow/cpf-validator/internal/server"
	"github.com/labstack/echo/v4"
)

// Self-check samples: one CPF with correct check digits, one without.
const (
	healthSampleValid   = "52998224725"
	healthSampleInvalid = "52998224726"
)

// HealthHandler exposes a "system" endpoint that load balancers and uptime
// monitors use to verify the service is alive and validating correctly.
type HealthHandler struct {
	Handler

	// isValid is the checksum under test; swapped in tests.
	isValid func(string) bool
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		isValid: cpf.IsValid,
	}
}

// CheckHealth returns service status and a validator self-check.
//
// Response includes:
//   - overall status (healthy/unhealthy)
//   - timestamp (UTC) and uptime
//   - environment (from config)
//   - checks map (validator)
//
// It returns 200 when the self-check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]interface{}{}
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	// ---------------- Validator self-check -----------------------------------
	checkStart := time.Now()
	isHealthy := h.isValid(healthSampleValid) && !h.isValid(healthSampleInvalid)

	if !isHealthy {
		checks["validator"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(checkStart).String(),
			"error":         "checksum self-check returned unexpected verdicts",
		}

		logger.Error().
			Dur("response_time", time.Since(checkStart)).
			Msg("validator health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "validator",
				"operation":        "health_check",
				"error_type":       "validator_unhealthy",
				"response_time_ms": time.Since(checkStart).Milliseconds(),
			})
		}
	} else {
		checks["validator"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}

		logger.Debug().
			Dur("response_time", time.Since(checkStart)).
			Msg("validator health check passed")
	}

	// ---------------- Overall status + response ------------------------------
	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
