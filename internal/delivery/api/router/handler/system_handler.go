package handler

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"planner/config"
	"planner/internal/delivery/api/response"
	"planner/internal/infra/keepalive"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const welcomeMessage = "Welcome to Daily Planner API!"

// maxKeepAliveMinutes is the longest duration a time.Duration can hold, in minutes.
const maxKeepAliveMinutes = math.MaxInt64 / int64(time.Minute)

type keepAliveStarter interface {
	Start(ctx context.Context, duration time.Duration)
}

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	Scheduler *keepalive.Scheduler
	Config    *config.Config
}

// SystemHandler serves the unauthenticated service endpoints.
type SystemHandler struct {
	keepAlive       keepAliveStarter
	defaultDuration time.Duration
}

// NewSystemHandler creates a new SystemHandler instance
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		keepAlive:       params.Scheduler,
		defaultDuration: params.Config.KeepAlive.DefaultDuration,
	}
}

// Welcome answers the root path with a plain-text greeting.
func (h *SystemHandler) Welcome(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}

// HealthCheck reports that the process is serving requests.
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// StartKeepAlive restarts the keep-alive job for :duration minutes,
// falling back to the configured default when the parameter is missing, not a positive integer,
// or too large to represent.
func (h *SystemHandler) StartKeepAlive(c echo.Context) error {
	duration := h.defaultDuration
	minutes, err := strconv.ParseInt(c.Param("duration"), 10, 64)
	if err == nil && minutes > 0 && minutes <= maxKeepAliveMinutes {
		duration = time.Duration(minutes) * time.Minute
	}

	h.keepAlive.Start(c.Request().Context(), duration)

	return c.String(http.StatusOK, fmt.Sprintf("Started background task for %d minutes.", int(duration.Minutes())))
}
