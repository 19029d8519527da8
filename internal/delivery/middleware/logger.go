package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"photocard/config"
	deliverycontext "photocard/internal/delivery/context"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs every request in debug mode and server failures always
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  map[string]bool
}

// NewLoggerMiddleware creates a new logger middleware. Requests to quiet
// paths are only logged when they fail.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, quiet ...string) *LoggerMiddleware {
	m := &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		quiet:  make(map[string]bool, len(quiet)),
	}
	for _, p := range quiet {
		m.quiet[p] = true
	}

	return m
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusOf(err)
		}
		if status >= http.StatusInternalServerError || (m.debug && !m.quiet[c.Path()]) {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func statusOf(err error) int {
	if he, ok := errors.AsType[*echo.HTTPError](err); ok {
		return he.Code
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}
