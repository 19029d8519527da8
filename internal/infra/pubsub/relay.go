package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"photocard/config"
	"photocard/internal/domain/entity"
	"photocard/internal/domain/lifecycle"
	"photocard/internal/domain/service"
	"photocard/internal/replica"

	"go.uber.org/fx"
)

const defaultRelayBuffer = 256

// ChangeRelay forwards every replica event to the event publisher. OnEvent
// runs under the replica lock, so it only enqueues; a separate goroutine
// publishes. Events that find the queue full are dropped.
type ChangeRelay struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	queue     chan *service.ChangeNotification
	dropped   atomic.Uint64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewChangeRelay creates a relay with room for buffer pending events.
func NewChangeRelay(publisher service.EventPublisher, buffer int, logger *slog.Logger) *ChangeRelay {
	if buffer <= 0 {
		buffer = defaultRelayBuffer
	}

	return &ChangeRelay{
		publisher: publisher,
		logger:    logger,
		queue:     make(chan *service.ChangeNotification, buffer),
	}
}

// Interest implements replica.Listener.
func (r *ChangeRelay) Interest() replica.Interest { return replica.InterestAll }

// OnEvent implements replica.Listener.
func (r *ChangeRelay) OnEvent(e replica.Event) {
	n := Notification(e, time.Now().UTC())
	select {
	case r.queue <- n:
	default:
		dropped := r.dropped.Add(1)
		r.logger.Warn("Change relay queue full, dropping event",
			slog.String("kind", n.Kind),
			slog.Uint64("dropped_total", dropped),
		)
	}
}

// Dropped returns how many events were dropped so far.
func (r *ChangeRelay) Dropped() uint64 { return r.dropped.Load() }

// Start launches the publishing goroutine.
func (r *ChangeRelay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(context.WithoutCancel(ctx))
	r.wg.Go(func() {
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-r.queue:
				r.publish(ctx, n)
			}
		}
	})
}

// Stop ends the publishing goroutine. Events still queued are discarded.
func (r *ChangeRelay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *ChangeRelay) publish(ctx context.Context, n *service.ChangeNotification) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := r.publisher.PublishChange(ctx, n); err != nil {
		r.logger.Warn("Failed to publish change notification",
			slog.String("kind", n.Kind),
			slog.Any("error", err),
		)
	}
}

// Notification converts a replica event into its relayed form.
func Notification(e replica.Event, at time.Time) *service.ChangeNotification {
	n := &service.ChangeNotification{Kind: e.Kind().String(), At: at}

	switch ev := e.(type) {
	case replica.IdolsChanged:
		n.Collection, n.IDs = string(entity.CollectionIdols), ids(ev.Idols)
	case replica.ArtistsChanged:
		n.Collection, n.IDs = string(entity.CollectionArtists), ids(ev.Artists)
	case replica.AlbumsChanged:
		n.Collection, n.IDs = string(entity.CollectionAlbums), ids(ev.Albums)
	case replica.PhotocardsChanged:
		n.Collection, n.IDs = string(entity.CollectionPhotocards), ids(ev.Photocards)
	case replica.ListingsChanged:
		n.Collection, n.IDs = string(entity.CollectionListings), ids(ev.Listings)
	case replica.UserChanged:
		n.Collection = string(entity.CollectionUsers)
		n.UserID = ev.UserID
	case replica.FeedStatusChanged:
		n.Collection = string(ev.Changed)
		if s, ok := ev.Status(); ok {
			n.State = s.State.String()
			if s.Err != nil {
				n.Error = s.Err.Error()
			}
		}
	}

	return n
}

func ids[T entity.Entity](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.EntityID()
	}

	return out
}

// RelayParams holds dependencies for the relay, injected by Fx
type RelayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Replica   *replica.Replica
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// RegisterChangeRelay subscribes a relay to the replica for the lifetime
// of the application.
func RegisterChangeRelay(params RelayParams) *ChangeRelay {
	buffer := defaultRelayBuffer
	if params.Config.PubSub != nil && params.Config.PubSub.RelayBuffer > 0 {
		buffer = params.Config.PubSub.RelayBuffer
	}

	relay := NewChangeRelay(params.Publisher, buffer, params.Logger)
	var sub replica.Subscription

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			relay.Start(ctx)
			sub = params.Replica.AddListener(relay)

			return nil
		},
		OnStop: func(context.Context) error {
			params.Replica.RemoveListener(sub)
			relay.Stop()

			return nil
		},
	})

	return relay
}
