package pubsub

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
	"photocard/internal/domain/service"
	"photocard/internal/replica"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	changes []*service.ChangeNotification
	block   chan struct{}
}

func (p *recordingPublisher) PublishChange(ctx context.Context, n *service.ChangeNotification) error {
	if p.block != nil {
		select {
		case <-p.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.changes = append(p.changes, n)

	return nil
}

func (p *recordingPublisher) PublishMarketEvent(context.Context, *service.MarketEvent) error {
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.changes))
	for _, n := range p.changes {
		out = append(out, n.Kind)
	}

	return out
}

func (p *recordingPublisher) last() *service.ChangeNotification {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.changes) == 0 {
		return nil
	}

	return p.changes[len(p.changes)-1]
}

func TestChangeRelay_PublishesReplicaEvents(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pub := &recordingPublisher{}
	relay := NewChangeRelay(pub, 16, logger)
	relay.Start(context.Background())
	t.Cleanup(relay.Stop)

	r := replica.New(replica.Options{}, logger)
	r.AddListener(relay)

	// replay of the five collection kinds
	require.Eventually(t, func() bool { return len(pub.kinds()) == 5 }, time.Second, 5*time.Millisecond)

	r.Apply(entity.CollectionIdols, repository.Batch{Changes: []repository.Change{{
		Kind: repository.ChangeAdded, OldIndex: -1, NewIndex: 0, ID: "i1",
		Record: repository.Record{"name": "Jisoo"},
	}}})

	require.Eventually(t, func() bool { return len(pub.kinds()) == 6 }, time.Second, 5*time.Millisecond)
	last := pub.last()
	assert.Equal(t, "idol", last.Kind)
	assert.Equal(t, "idols", last.Collection)
	assert.Equal(t, []string{"i1"}, last.IDs)
}

func TestChangeRelay_DropsWhenFull(t *testing.T) {
	pub := &recordingPublisher{block: make(chan struct{})}
	relay := NewChangeRelay(pub, 1, slog.New(slog.DiscardHandler))

	// not started: nothing drains the queue
	relay.OnEvent(replica.IdolsChanged{})
	relay.OnEvent(replica.IdolsChanged{})
	relay.OnEvent(replica.AlbumsChanged{})

	assert.Equal(t, uint64(2), relay.Dropped())
}

func TestNotification(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	n := Notification(replica.UserChanged{UserID: "u1"}, at)
	assert.Equal(t, "user", n.Kind)
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, at, n.At)

	n = Notification(replica.FeedStatusChanged{
		Changed: entity.CollectionAlbums,
		Statuses: []replica.FeedStatus{
			{Collection: entity.CollectionIdols, State: replica.FeedListening},
			{Collection: entity.CollectionAlbums, State: replica.FeedDegraded, Err: errors.New("unavailable")},
		},
	}, at)
	assert.Equal(t, "albums", n.Collection)
	assert.Equal(t, replica.FeedDegraded.String(), n.State)
	assert.Equal(t, "unavailable", n.Error)

	n = Notification(replica.PhotocardsChanged{Photocards: []*entity.Photocard{{ID: "p1"}, {ID: "p2"}}}, at)
	assert.Equal(t, []string{"p1", "p2"}, n.IDs)
}
