package pubsub

import (
	"context"
	"log/slog"

	"photocard/config"
	"photocard/internal/domain/constants"
	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"go.uber.org/fx"
)

// discardTransport is used when no provider is configured. The replica
// still runs; its changes just never leave the process.
type discardTransport struct {
	logger *slog.Logger
}

func (t *discardTransport) send(_ context.Context, msg *outbound) error {
	t.logger.Debug("event discarded",
		slog.String("event_type", msg.Attributes[AttrEventType]),
		slog.String("message_id", msg.ID),
	)

	return nil
}

func (t *discardTransport) Close() error { return nil }

// NewNoopPublisher returns a publisher that discards every event.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return newPublisher(&discardTransport{logger: logger}, logger)
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// openTransport picks the transport named by cfg.Provider.
func openTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (transport, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: localEndpoint is required for the local provider")
		}

		return newLocalHTTPTransport(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: projectId and topicId are required for the google provider")
		}

		t, err := newGoogleTransport(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

		return t, nil
	default:
		return nil, errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
	}
}

// NewEventPublisher builds the publisher for the configured provider and
// closes it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("No pubsub provider configured, replica events stay local")

		return NewNoopPublisher(logger), nil
	}

	t, err := openTransport(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Publishing replica events", slog.String("provider", cfg.Provider))

	publisher := newPublisher(t, logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
