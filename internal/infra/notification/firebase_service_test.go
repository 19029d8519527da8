package notification

import (
	"context"
	"log/slog"
	"testing"

	"photocard/config"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", nil
}

func createTestNotifier(t *testing.T, cfg *config.Config) (service.MarketNotifier, *fakeSender) {
	t.Helper()

	sender := &fakeSender{}

	return NewMarketNotifier(sender, cfg, slog.New(slog.DiscardHandler)), sender
}

func TestNotifyNewListing_UsesMarketplaceTopic(t *testing.T) {
	n, sender := createTestNotifier(t, &config.Config{})

	err := n.NotifyNewListing(context.Background(), &service.MarketEvent{
		Type:        service.MarketListed,
		ListingID:   "l1",
		PhotocardID: "p1",
		SellerID:    "u1",
		Price:       12.5,
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "marketplace", msg.Topic)
	assert.Equal(t, "New photocard listed for 12.50", msg.Notification.Body)
	assert.Equal(t, "l1", msg.Data["listing_id"])
	assert.Equal(t, "12.5", msg.Data["price"])
	assert.NotContains(t, msg.Data, "buyer_id")
}

func TestNotifyNewListing_ConfiguredTopic(t *testing.T) {
	cfg := &config.Config{Notification: &config.NotificationConfig{MarketplaceTopic: "market-dev"}}
	n, sender := createTestNotifier(t, cfg)

	require.NoError(t, n.NotifyNewListing(context.Background(), &service.MarketEvent{ListingID: "l1", Description: "mint"}))
	assert.Equal(t, "market-dev", sender.sent[0].Topic)
	assert.Equal(t, "mint", sender.sent[0].Notification.Body)
}

func TestNotifyListingSold_TargetsSeller(t *testing.T) {
	n, sender := createTestNotifier(t, &config.Config{})

	err := n.NotifyListingSold(context.Background(), &service.MarketEvent{
		Type:      service.MarketSold,
		ListingID: "l1",
		SellerID:  "u1",
		BuyerID:   "u2",
		Price:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, "seller-u1", sender.sent[0].Topic)
	assert.Equal(t, "u2", sender.sent[0].Data["buyer_id"])

	assert.Error(t, n.NotifyListingSold(context.Background(), &service.MarketEvent{ListingID: "l2"}))
}

func TestSend_Failure(t *testing.T) {
	n, sender := createTestNotifier(t, &config.Config{})
	sender.err = assert.AnError

	err := n.NotifyNewListing(context.Background(), &service.MarketEvent{ListingID: "l1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, domainerrors.ErrPushUnavailable)
}
