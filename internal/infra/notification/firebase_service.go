// Package notification pushes marketplace activity through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"photocard/config"
	"photocard/internal/domain/constants"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// Sender sends one FCM message. *messaging.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	sender           Sender
	marketplaceTopic string
	logger           *slog.Logger
}

// NewMarketNotifier creates the FCM-backed market notifier
func NewMarketNotifier(sender Sender, cfg *config.Config, logger *slog.Logger) service.MarketNotifier {
	topic := constants.TopicMarketplace
	if cfg.Notification != nil && cfg.Notification.MarketplaceTopic != "" {
		topic = cfg.Notification.MarketplaceTopic
	}

	return &firebaseService{
		sender:           sender,
		marketplaceTopic: topic,
		logger:           logger,
	}
}

// ProvideMarketNotifier adapts the messaging client for Fx.
func ProvideMarketNotifier(client *messaging.Client, cfg *config.Config, logger *slog.Logger) service.MarketNotifier {
	return NewMarketNotifier(client, cfg, logger)
}

// NotifyNewListing sends the listing to every device subscribed to the
// marketplace topic.
func (s *firebaseService) NotifyNewListing(ctx context.Context, event *service.MarketEvent) error {
	body := fmt.Sprintf("New photocard listed for %s", formatPrice(event.Price))
	if event.Description != "" {
		body = event.Description
	}

	return s.send(ctx, &messaging.Message{
		Topic: s.marketplaceTopic,
		Notification: &messaging.Notification{
			Title: "New listing",
			Body:  body,
		},
		Data: eventData(event),
	})
}

// NotifyListingSold tells the seller's devices that the card sold.
func (s *firebaseService) NotifyListingSold(ctx context.Context, event *service.MarketEvent) error {
	if event.SellerID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("sold event without seller")
	}

	return s.send(ctx, &messaging.Message{
		Topic: constants.TopicSellerPrefix + event.SellerID,
		Notification: &messaging.Notification{
			Title: "Photocard sold",
			Body:  fmt.Sprintf("Your listing sold for %s", formatPrice(event.Price)),
		},
		Data: eventData(event),
	})
}

func (s *firebaseService) send(ctx context.Context, message *messaging.Message) error {
	id, err := s.sender.Send(ctx, message)
	if err != nil {
		s.logger.Warn("Failed to send notification",
			slog.String("topic", message.Topic),
			slog.Any("error", err),
		)
		if messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err) {
			return domainerrors.ErrPushUnavailable.WithDetails(err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.Info("Notification sent",
		slog.String("topic", message.Topic),
		slog.String("message_id", id),
	)

	return nil
}

func eventData(event *service.MarketEvent) map[string]string {
	data := map[string]string{
		"type":         event.Type,
		"listing_id":   event.ListingID,
		"photocard_id": event.PhotocardID,
		"seller_id":    event.SellerID,
		"price":        strconv.FormatFloat(event.Price, 'f', -1, 64),
	}
	if event.BuyerID != "" {
		data["buyer_id"] = event.BuyerID
	}

	return data
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
