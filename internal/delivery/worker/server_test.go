package worker

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"photocard/config"
	"photocard/internal/delivery/worker/handler"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/service"
	"photocard/internal/infra/pubsub"
	mockservice "photocard/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// newPipeline wires the local push transport straight into the notifier
// routes.
func newPipeline(t *testing.T) (service.EventPublisher, *mockservice.MockMarketNotifier) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{}
	notifier := mockservice.NewMockMarketNotifier(t)
	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, Notifier: notifier})

	srv := httptest.NewServer(NewEcho(cfg, logger, push))
	t.Cleanup(srv.Close)

	lc := fxtest.NewLifecycle(t)
	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:  lc,
		Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{
			Provider:      "local",
			LocalEndpoint: srv.URL + "/push",
		}},
		Logger: logger,
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return publisher, notifier
}

func TestNotifier_MarketEventsReachFCM(t *testing.T) {
	publisher, notifier := newPipeline(t)
	ctx := context.Background()

	notifier.EXPECT().NotifyNewListing(mock.Anything, mock.MatchedBy(func(e *service.MarketEvent) bool {
		return e.ListingID == "l1" && e.SellerID == "u1"
	})).Return(nil)
	notifier.EXPECT().NotifyListingSold(mock.Anything, mock.MatchedBy(func(e *service.MarketEvent) bool {
		return e.ListingID == "l1" && e.BuyerID == "u2"
	})).Return(nil)

	require.NoError(t, publisher.PublishMarketEvent(ctx, &service.MarketEvent{
		Type: service.MarketListed, ListingID: "l1", SellerID: "u1", Price: 10,
	}))
	require.NoError(t, publisher.PublishMarketEvent(ctx, &service.MarketEvent{
		Type: service.MarketSold, ListingID: "l1", SellerID: "u1", BuyerID: "u2", Price: 10,
	}))
}

func TestNotifier_TransientFailureIsRetried(t *testing.T) {
	publisher, notifier := newPipeline(t)

	notifier.EXPECT().NotifyNewListing(mock.Anything, mock.Anything).
		Return(domainerrors.ErrPushUnavailable.WithDetails("quota"))

	err := publisher.PublishMarketEvent(context.Background(), &service.MarketEvent{
		Type: service.MarketListed, ListingID: "l2", SellerID: "u1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNotifier_ChangeNotificationsAreAcknowledged(t *testing.T) {
	publisher, _ := newPipeline(t)

	assert.NoError(t, publisher.PublishChange(context.Background(), &service.ChangeNotification{Kind: "idols"}))
}

func TestNotifier_Health(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	e := NewEcho(&config.Config{}, logger, handler.NewPushHandler(handler.PushHandlerParams{
		Config: &config.Config{},
		Logger: logger,
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","role":"notifier"}`, rec.Body.String())
}
