package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"github.com/google/uuid"
)

// Message attributes set on every published message.
const (
	AttrEventType  = "event_type"
	AttrRequestID  = "request_id"
	AttrKind       = "kind"
	AttrCollection = "collection"
	AttrMarketType = "market_type"
	AttrListingID  = "listing_id"
)

// outbound is one encoded message ready for a transport.
type outbound struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

// transport delivers encoded messages. Each provider implements one.
type transport interface {
	send(ctx context.Context, msg *outbound) error
	Close() error
}

// publisher encodes domain events and hands them to a transport.
type publisher struct {
	transport transport
	logger    *slog.Logger
}

func newPublisher(t transport, logger *slog.Logger) *publisher {
	return &publisher{transport: t, logger: logger}
}

// PublishChange publishes a replica change notification.
func (p *publisher) PublishChange(ctx context.Context, n *service.ChangeNotification) error {
	if n.At.IsZero() {
		n.At = time.Now().UTC()
	}

	data, err := json.Marshal(n)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventType: service.EventTypeChange,
		AttrKind:      n.Kind,
	}
	if n.Collection != "" {
		attributes[AttrCollection] = n.Collection
	}
	if n.RequestID != "" {
		attributes[AttrRequestID] = n.RequestID
	}

	return p.transport.send(ctx, &outbound{ID: uuid.NewString(), Data: data, Attributes: attributes})
}

// PublishMarketEvent publishes marketplace activity for the notifier.
func (p *publisher) PublishMarketEvent(ctx context.Context, event *service.MarketEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventType:  service.EventTypeMarket,
		AttrMarketType: event.Type,
		AttrListingID:  event.ListingID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	p.logger.Info("Publishing market event",
		slog.String("type", event.Type),
		slog.String("listing_id", event.ListingID),
	)

	return p.transport.send(ctx, &outbound{ID: uuid.NewString(), Data: data, Attributes: attributes})
}

// Close releases the transport.
func (p *publisher) Close() error {
	return p.transport.Close()
}
