// Package handler turns Pub/Sub push deliveries into device notifications.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"photocard/config"
	deliverycontext "photocard/internal/delivery/context"
	"photocard/internal/domain/constants"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Message attributes read from every push.
const (
	attrEventType = "event_type"
	attrRequestID = "request_id"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a push token for audience. idtoken.Validate
// satisfies it.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages of the photocard topic
type PushHandler struct {
	validate TokenValidator // nil when push auth is off
	audience string
	logger   *slog.Logger
	notifier service.MarketNotifier
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.MarketNotifier
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are
// verified for the google provider outside the develop environment.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:   params.Logger,
		notifier: params.Notifier,
	}

	cfg := params.Config
	if cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvDevelop {
		h.validate = idtoken.Validate
	}
	if cfg.Notification != nil {
		h.audience = cfg.Notification.PushAudience
	}

	return h
}

// WithTokenValidator replaces the push token check. Tests use it to turn
// verification on without Google credentials.
func (h *PushHandler) WithTokenValidator(v TokenValidator, audience string) *PushHandler {
	h.validate = v
	h.audience = audience

	return h
}

// HandlePush acknowledges with 2xx unless the message should be
// redelivered, which is only the case for transient push failures.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.validate != nil {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var push PubSubMessage
	if err := c.Bind(&push); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	attrs := push.Message.Attributes
	requestID := attrs[attrRequestID]
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	ctx = deliverycontext.WithScope(ctx, deliverycontext.NewRequestID(requestID), h.logger)
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("message_id", push.Message.MessageID),
		slog.String("event_type", attrs[attrEventType]),
	)

	switch attrs[attrEventType] {
	case service.EventTypeMarket:
		err = h.handleMarket(ctx, data)
	case service.EventTypeChange:
		// Change notifications are for other subscribers of the topic.
		logger.Debug("[Worker] Change notification acknowledged")

		return c.NoContent(http.StatusNoContent)
	default:
		logger.Warn("[Worker] Unknown event type acknowledged")

		return c.NoContent(http.StatusNoContent)
	}

	if err != nil {
		retry := errors.Is(err, domainerrors.ErrPushUnavailable)
		logger.Error("[Worker] Failed to process market event",
			slog.Any("error", err),
			slog.Bool("retryable", retry),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Worker] Market event processed")

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) handleMarket(ctx context.Context, data []byte) error {
	var event service.MarketEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("market event: " + err.Error())
	}

	switch event.Type {
	case service.MarketListed:
		return h.notifier.NotifyNewListing(ctx, &event)
	case service.MarketSold:
		return h.notifier.NotifyListingSold(ctx, &event)
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown market event " + event.Type)
	}
}

// verifyToken checks the bearer token Pub/Sub attaches to authenticated
// push requests. Without a configured audience the endpoint URL is used.
func (h *PushHandler) verifyToken(req *http.Request) error {
	const bearerPrefix = "Bearer "
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}
