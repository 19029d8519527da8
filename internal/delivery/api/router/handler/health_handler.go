package handler

import (
	"net/http"

	"photocard/internal/delivery/api/response"
	"photocard/internal/replica"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	Replica *replica.Replica
}

// StatusHandler reports liveness and the state of the change feeds
type StatusHandler struct {
	replica *replica.Replica
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{replica: params.Replica}
}

// Health answers "ok" while any feed listens or none has reported yet,
// and "degraded" otherwise. It always returns 200.
func (h *StatusHandler) Health(c echo.Context) error {
	status := "ok"
	statuses := h.replica.FeedStatuses()
	if len(statuses) > 0 {
		status = "degraded"
		for _, s := range statuses {
			if s.State == replica.FeedListening {
				status = "ok"

				break
			}
		}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"status":    status,
		"listeners": h.replica.Listeners(),
	})
}

// Feeds lists the last reported state of every change feed
func (h *StatusHandler) Feeds(c echo.Context) error {
	return response.List(c, mapAll(h.replica.FeedStatuses(), NewFeedView))
}
