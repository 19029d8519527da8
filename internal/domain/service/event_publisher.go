package service

import (
	"context"
	"time"
)

// Event types carried in the "event_type" message attribute.
const (
	EventTypeChange = "change"
	EventTypeMarket = "market"
)

// ChangeNotification is the message relayed for every replica event.
type ChangeNotification struct {
	RequestID  string    `json:"request_id,omitempty"`
	Kind       string    `json:"kind"`
	Collection string    `json:"collection,omitempty"`
	IDs        []string  `json:"ids,omitempty"`     // Ids of the collection after the change.
	UserID     string    `json:"user_id,omitempty"` // Current user for user events.
	State      string    `json:"state,omitempty"`   // Feed state for feed events.
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

// Market event types.
const (
	MarketListed = "listed"
	MarketSold   = "sold"
)

// MarketEvent describes marketplace activity to push to devices.
type MarketEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Type        string    `json:"type"`
	ListingID   string    `json:"listing_id"`
	PhotocardID string    `json:"photocard_id"`
	SellerID    string    `json:"seller_id"`
	BuyerID     string    `json:"buyer_id,omitempty"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishChange publishes a replica change for downstream consumers
	PublishChange(ctx context.Context, n *ChangeNotification) error

	// PublishMarketEvent publishes marketplace activity for the notifier worker
	PublishMarketEvent(ctx context.Context, event *MarketEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
