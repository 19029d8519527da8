package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"photocard/internal/delivery/api/response"
	deliverycontext "photocard/internal/delivery/context"
	"photocard/internal/replica"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 15 * time.Second

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	Replica *replica.Replica
	Logger  *slog.Logger
}

// EventHandler streams replica events to HTTP clients as server-sent events
type EventHandler struct {
	replica   *replica.Replica
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		replica:   params.Replica,
		logger:    params.Logger,
		heartbeat: defaultHeartbeat,
	}
}

// mailbox hands events from the replica to the streaming goroutine. It
// keeps only the latest event of each kind, so OnEvent never blocks and
// a slow client skips intermediate snapshots instead of stalling the
// replica.
type mailbox struct {
	interest replica.Interest

	mu      sync.Mutex
	pending map[replica.Kind]replica.Event
	order   []replica.Kind
	signal  chan struct{}
}

func newMailbox(interest replica.Interest) *mailbox {
	return &mailbox{
		interest: interest,
		pending:  make(map[replica.Kind]replica.Event),
		signal:   make(chan struct{}, 1),
	}
}

func (m *mailbox) Interest() replica.Interest { return m.interest }

func (m *mailbox) OnEvent(e replica.Event) {
	m.mu.Lock()
	if _, queued := m.pending[e.Kind()]; !queued {
		m.order = append(m.order, e.Kind())
	}
	m.pending[e.Kind()] = e
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}

// drain returns the queued events in arrival order of their kinds.
func (m *mailbox) drain() []replica.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := make([]replica.Event, 0, len(m.order))
	for _, k := range m.order {
		events = append(events, m.pending[k])
		delete(m.pending, k)
	}
	m.order = m.order[:0]

	return events
}

// Stream registers a listener for ?interest= (all kinds by default) and
// writes each event until the client disconnects. The current state of
// every kind is sent first.
func (h *EventHandler) Stream(c echo.Context) error {
	interest, err := replica.ParseInterest(c.QueryParam("interest"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	box := newMailbox(interest)
	sub := h.replica.AddListener(box)
	defer h.replica.RemoveListener(sub)
	logger.Info("Event stream opened", slog.String("interest", interest.String()))

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Event stream closed")

			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case <-box.signal:
			for _, e := range box.drain() {
				if err := writeEvent(res, e); err != nil {
					logger.Debug("Event stream write failed", slog.Any("error", err))

					return nil
				}
			}
			res.Flush()
		}
	}
}

func writeEvent(w *echo.Response, e replica.Event) error {
	view, ok := NewEventView(e)
	if !ok {
		return nil
	}
	data, err := json.Marshal(view.Data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", view.Kind, data)

	return err
}
