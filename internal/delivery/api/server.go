package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"planner/config"
	"planner/internal/delivery"
	apimiddleware "planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/router"
	"planner/internal/delivery/middleware"
	"planner/internal/domain/lifecycle"
	"planner/internal/errors"
	"planner/internal/infra/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Validator    *validation.Validator
	RouterParams router.RouterParams
}

// NewServer builds the planner API and registers its graceful shutdown.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	applyTimeouts(e.Server, params.Cfg)

	usePipeline(e, params.Cfg, params.Logger)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = params.Validator

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func applyTimeouts(srv *http.Server, cfg *config.Config) {
	timeouts := cfg.HTTP.Timeouts
	srv.ReadTimeout = timeouts.ReadTimeout
	srv.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	srv.WriteTimeout = timeouts.WriteTimeout
	srv.IdleTimeout = timeouts.IdleTimeout
}

// usePipeline installs the shared middleware. Order matters: panics are recovered
// first, and the request id exists before anything logs.
func usePipeline(e *echo.Echo, cfg *config.Config, logger *slog.Logger) {
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(corsConfig()),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)
}

// corsConfig lets browser clients send and read the auth-token header.
func corsConfig() echomiddleware.CORSConfig {
	return echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			apimiddleware.HeaderAuthToken,
		},
		ExposeHeaders: []string{apimiddleware.HeaderAuthToken, echo.HeaderXRequestID},
	}
}

func (s *apiServer) Serve(ctx context.Context) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.InfoContext(ctx, "Daily Planner API listening", slog.String("addr", addr))

	err := s.echo.StartH2CServer(addr, &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "planner API stopped unexpectedly")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.InfoContext(ctx, "Shutting down Daily Planner API")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
