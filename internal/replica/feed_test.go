package replica

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"
)

type step struct {
	batch repository.Batch
	err   error
}

type fakeStream struct {
	ctx   context.Context
	steps chan step
	done  chan struct{}
	once  sync.Once
}

func newFakeStream(steps ...step) *fakeStream {
	s := &fakeStream{steps: make(chan step, len(steps)), done: make(chan struct{})}
	for _, st := range steps {
		s.steps <- st
	}

	return s
}

func (s *fakeStream) Next() (repository.Batch, error) {
	select {
	case st := <-s.steps:
		return st.batch, st.err
	case <-s.ctx.Done():
		return repository.Batch{}, s.ctx.Err()
	case <-s.done:
		return repository.Batch{}, errors.New("stream stopped")
	}
}

func (s *fakeStream) Stop() {
	s.once.Do(func() { close(s.done) })
}

// fakeSource hands out the prepared streams in order, then fails.
type fakeSource struct {
	mu      sync.Mutex
	streams []*fakeStream
	calls   int
}

func (f *fakeSource) Subscribe(ctx context.Context, _ entity.Collection) (repository.ChangeStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if len(f.streams) == 0 {
		return nil, errors.New("unavailable")
	}
	s := f.streams[0]
	f.streams = f.streams[1:]
	s.ctx = ctx

	return s, nil
}

func (f *fakeSource) subscribeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

var fastRetry = RetryPolicy{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

func TestFeed_AppliesBatchesInOrder(t *testing.T) {
	r := newTestReplica(t, Options{})
	source := &fakeSource{streams: []*fakeStream{newFakeStream(
		step{batch: batchOf(added("i1", 0, nil), added("i2", 1, nil))},
		step{batch: batchOf(modified("i2", 1, 0, nil))},
	)}}
	feed := NewFeed(entity.CollectionIdols, source, r, fastRetry, slog.New(slog.DiscardHandler))
	assert.Equal(t, FeedUninitialized, feed.State())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- feed.Run(ctx) }()

	assert.Eventually(t, func() bool {
		ids := idolIDs(r.Idols())

		return len(ids) == 2 && ids[0] == "i2"
	}, time.Second, time.Millisecond)
	assert.Equal(t, FeedListening, feed.State())

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, FeedStopped, feed.State())
	assert.Equal(t, 1, source.subscribeCalls())
}

func TestFeed_ResubscribeRebuildsCollection(t *testing.T) {
	r := newTestReplica(t, Options{})
	statuses := newRecorder(InterestFeedStatus)
	r.AddListener(statuses)

	source := &fakeSource{streams: []*fakeStream{
		newFakeStream(
			step{batch: batchOf(added("i1", 0, nil), added("i2", 1, nil))},
			step{err: errors.New("connection reset")},
		),
		newFakeStream(
			step{batch: batchOf(added("i2", 0, nil))},
		),
	}}
	feed := NewFeed(entity.CollectionIdols, source, r, fastRetry, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = feed.Run(ctx) }()

	assert.Eventually(t, func() bool {
		ids := idolIDs(r.Idols())

		return source.subscribeCalls() == 2 && len(ids) == 1 && ids[0] == "i2"
	}, time.Second, time.Millisecond)

	var degraded []FeedStatus
	for _, e := range statuses.all() {
		if s, ok := e.(FeedStatusChanged).Status(); ok && s.State == FeedDegraded {
			degraded = append(degraded, s)
		}
	}
	require.Len(t, degraded, 1)
	assert.ErrorIs(t, degraded[0].Err, domainerrors.ErrChangeFeed)
	assert.Equal(t, 1, degraded[0].Attempt)
}

func TestFeed_GivesUpAfterRetryBudget(t *testing.T) {
	r := newTestReplica(t, Options{})
	statuses := newRecorder(InterestFeedStatus)
	r.AddListener(statuses)

	source := &fakeSource{}
	feed := NewFeed(entity.CollectionListings, source, r, fastRetry, slog.New(slog.DiscardHandler))

	err := feed.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrChangeFeed)
	var feedErr *domainerrors.ChangeFeedError
	require.ErrorAs(t, err, &feedErr)
	assert.Equal(t, entity.CollectionListings, feedErr.Collection)
	assert.Equal(t, 3, feedErr.Attempt)
	assert.Equal(t, 3, source.subscribeCalls())
	assert.Equal(t, FeedStopped, feed.State())

	var states []FeedState
	for _, e := range statuses.all() {
		if s, ok := e.(FeedStatusChanged).Status(); ok {
			states = append(states, s.State)
		}
	}
	assert.Equal(t, []FeedState{FeedDegraded, FeedDegraded, FeedStopped}, states)
}

func TestFeedGroup_StartStop(t *testing.T) {
	r := newTestReplica(t, Options{})
	source := &fakeSource{}
	for range entity.Collections() {
		source.streams = append(source.streams, newFakeStream())
	}
	group := NewFeedGroup(entity.Collections(), source, r, fastRetry, slog.New(slog.DiscardHandler))

	group.Start(context.Background())
	assert.Eventually(t, func() bool {
		for _, s := range group.States() {
			if s != FeedListening {
				return false
			}
		}

		return true
	}, time.Second, time.Millisecond)

	group.Stop()
	for c, s := range group.States() {
		assert.Equal(t, FeedStopped, s, c.String())
	}
	assert.Len(t, r.FeedStatuses(), len(entity.Collections()))
}
