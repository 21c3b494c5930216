package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/deppfellow/barbershop-api/internal/middleware"
	"github.com/deppfellow/barbershop-api/internal/server"
)

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// HealthHandler reports dependency health on /status.
//
// The database is required: a failed ping answers 503. Redis only backs the
// catalog cache and notifications, so a failed ping marks the service as
// degraded and still answers 200.
type HealthHandler struct {
	Handler
	cfg       *config.Config
	nrApp     *newrelic.Application
	pingDB    PingFunc
	pingRedis PingFunc
}

func NewHealthHandler(s *server.Server, pingDB, pingRedis PingFunc) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		cfg:       s.Config,
		nrApp:     s.LoggerService.GetApplication(),
		pingDB:    pingDB,
		pingRedis: pingRedis,
	}
}

// NewHealthHandlerFromServer pings the server's pool and, when configured, Redis.
func NewHealthHandlerFromServer(s *server.Server) *HealthHandler {
	var pingDB, pingRedis PingFunc
	if s.DB != nil {
		pingDB = s.DB.Pool.Ping
	}
	if s.Redis != nil {
		pingRedis = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}
	return NewHealthHandler(s, pingDB, pingRedis)
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().Str("operation", "health_check").Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.cfg.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	obs := h.cfg.Observability
	timeout := 5 * time.Second
	if obs != nil && obs.HealthChecks.Timeout > 0 {
		timeout = obs.HealthChecks.Timeout
	}
	enabled := func(name string) bool { return obs == nil || obs.HasCheck(name) }

	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	status := http.StatusOK

	if h.pingDB != nil && enabled("database") {
		result := h.check(ctx, "database", h.pingDB)
		response.Checks["database"] = result
		if result.Error != "" {
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	if h.pingRedis != nil && enabled("redis") {
		result := h.check(ctx, "redis", h.pingRedis)
		response.Checks["redis"] = result
		if result.Error != "" && response.Status == "healthy" {
			response.Status = "degraded"
		}
	}

	event := logger.Info()
	if response.Status != "healthy" {
		event = logger.Warn()
	}
	event.Str("status", response.Status).
		Dur("total_duration", time.Since(start)).
		Msg("health check finished")

	return c.JSON(status, response)
}

func (h *HealthHandler) check(ctx context.Context, name string, ping PingFunc) checkResult {
	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err == nil {
		return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
	}

	if h.nrApp != nil {
		h.nrApp.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
}
