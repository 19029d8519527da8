package replica

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"
)

// FeedState is the lifecycle state of one collection feed.
type FeedState int

const (
	FeedUninitialized FeedState = iota
	FeedListening
	FeedDegraded
	FeedStopped
)

func (s FeedState) String() string {
	switch s {
	case FeedUninitialized:
		return "uninitialized"
	case FeedListening:
		return "listening"
	case FeedDegraded:
		return "degraded"
	case FeedStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// FeedStatus is a snapshot of a feed's state.
type FeedStatus struct {
	Collection entity.Collection
	State      FeedState
	Attempt    int   // Consecutive failed subscriptions.
	Err        error // Last failure, nil while listening.
	Since      time.Time
}

// Sink receives what a feed produces. Replica implements it.
type Sink interface {
	Apply(c entity.Collection, batch repository.Batch)
	ReportFeedStatus(s FeedStatus)
}

// RetryPolicy bounds re-subscription after a feed error.
type RetryPolicy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

func (p RetryPolicy) backoff() retry.Backoff {
	b := retry.NewExponential(p.BaseDelay)
	b = retry.WithCappedDuration(p.MaxDelay, b)

	return retry.WithMaxRetries(p.MaxRetries, b)
}

// Feed drives one collection from a ChangeSource into a Sink. Batches
// are applied synchronously in delivery order.
type Feed struct {
	collection entity.Collection
	source     repository.ChangeSource
	sink       Sink
	policy     RetryPolicy
	logger     *slog.Logger
	now        func() time.Time

	mu    sync.Mutex
	state FeedState
}

// NewFeed returns an uninitialized feed.
func NewFeed(
	collection entity.Collection,
	source repository.ChangeSource,
	sink Sink,
	policy RetryPolicy,
	logger *slog.Logger,
) *Feed {
	return &Feed{
		collection: collection,
		source:     source,
		sink:       sink,
		policy:     policy,
		logger:     logger.With(slog.String("collection", collection.String())),
		now:        time.Now,
	}
}

// State returns the current state.
func (f *Feed) State() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Run listens until ctx is done or the retry budget is spent. A session
// that delivered at least one batch restores the full budget. The error
// returned after giving up is a ChangeFeedError.
func (f *Feed) Run(ctx context.Context) error {
	backoff := f.policy.backoff()
	attempt := 0
	resubscribe := false

	for {
		delivered, err := f.listen(ctx, resubscribe)
		if ctx.Err() != nil {
			f.setState(FeedStopped, 0, nil)

			return nil
		}
		if delivered {
			backoff = f.policy.backoff()
			attempt = 0
		}
		attempt++
		resubscribe = true
		if err == nil {
			err = errors.New("stream ended")
		}
		feedErr := domainerrors.NewChangeFeedError(f.collection, attempt, err)

		delay, stop := backoff.Next()
		if stop {
			f.logger.Error("change feed gave up", slog.Any("error", feedErr))
			f.setState(FeedStopped, attempt, feedErr)

			return feedErr
		}
		f.logger.Warn("change feed degraded",
			slog.Any("error", feedErr),
			slog.Duration("retryIn", delay),
		)
		f.setState(FeedDegraded, attempt, feedErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			f.setState(FeedStopped, 0, nil)

			return nil
		case <-timer.C:
		}
	}
}

// listen runs one subscription. The first batch after a re-subscription
// replaces the collection.
func (f *Feed) listen(ctx context.Context, resubscribe bool) (bool, error) {
	stream, err := f.source.Subscribe(ctx, f.collection)
	if err != nil {
		return false, errors.Wrap(err, "subscribe")
	}
	defer stream.Stop()

	f.setState(FeedListening, 0, nil)
	delivered := false
	for {
		batch, err := stream.Next()
		if err != nil {
			return delivered, errors.Wrap(err, "next batch")
		}
		if !delivered && resubscribe {
			batch.Reset = true
		}
		f.sink.Apply(f.collection, batch)
		delivered = true
	}
}

func (f *Feed) setState(state FeedState, attempt int, err error) {
	f.mu.Lock()
	if f.state == state && err == nil {
		f.mu.Unlock()

		return
	}
	f.state = state
	f.mu.Unlock()

	f.sink.ReportFeedStatus(FeedStatus{
		Collection: f.collection,
		State:      state,
		Attempt:    attempt,
		Err:        err,
		Since:      f.now(),
	})
}

// FeedGroup runs one Feed per collection.
type FeedGroup struct {
	feeds  []*Feed
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedGroup builds a feed for each collection.
func NewFeedGroup(
	collections []entity.Collection,
	source repository.ChangeSource,
	sink Sink,
	policy RetryPolicy,
	logger *slog.Logger,
) *FeedGroup {
	g := &FeedGroup{logger: logger}
	for _, c := range collections {
		g.feeds = append(g.feeds, NewFeed(c, source, sink, policy, logger))
	}

	return g
}

// Start launches every feed. The feeds are detached from ctx and run
// until Stop.
func (g *FeedGroup) Start(ctx context.Context) {
	ctx, g.cancel = context.WithCancel(context.WithoutCancel(ctx))
	for _, f := range g.feeds {
		g.wg.Go(func() {
			if err := f.Run(ctx); err != nil {
				g.logger.Error("feed stopped", slog.Any("error", err))
			}
		})
	}
}

// Stop cancels every feed and waits for them to return.
func (g *FeedGroup) Stop() {
	if g.cancel != nil {
		g.cancel()
	}
	g.wg.Wait()
}

// States returns the state of each feed in start order.
func (g *FeedGroup) States() map[entity.Collection]FeedState {
	states := make(map[entity.Collection]FeedState, len(g.feeds))
	for _, f := range g.feeds {
		states[f.collection] = f.State()
	}

	return states
}
