// Package worker is the notifier: it receives Pub/Sub pushes and turns
// marketplace events into device notifications.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"photocard/config"
	"photocard/internal/delivery"
	"photocard/internal/delivery/middleware"
	"photocard/internal/delivery/worker/handler"
	"photocard/internal/domain/lifecycle"
	"photocard/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the notifier server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// notifierServer serves the push endpoint. Shutdown drains in-flight
// pushes.
type notifierServer struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewEcho builds the notifier routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg, "/health").Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "role": "notifier"})
	})
	e.POST("/push", push.HandlePush)

	return e
}

// NewServer creates the notifier HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	timeouts := params.Cfg.HTTP.Timeouts
	srv := &notifierServer{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
			Handler:           NewEcho(params.Cfg, params.Logger, params.PushHandler),
			ReadTimeout:       timeouts.ReadTimeout,
			ReadHeaderTimeout: timeouts.ReadHeaderTimeout,
			WriteTimeout:      timeouts.WriteTimeout,
			IdleTimeout:       timeouts.IdleTimeout,
		},
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// Serve blocks until the server is shut down.
func (s *notifierServer) Serve(context.Context) error {
	s.logger.Info("Starting notifier", slog.String("addr", s.httpServer.Addr))

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *notifierServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Draining notifier")

	return errors.WithStack(s.httpServer.Shutdown(ctx))
}
