package replica

import (
	"log/slog"
	"sync"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
	"photocard/internal/domain/repository"
)

// Options tune a Replica.
type Options struct {
	// ReresolvePending revisits entities whose references were missing
	// once the referent arrives. Off, a reference that arrives late stays
	// unresolved until its holder changes again.
	ReresolvePending bool
}

// Replica is the single writer over the local graph. Every mutation and
// every listener callback runs under one lock.
//
// Listener callbacks may call RemoveListener. They must not call any
// other Replica method; hand the event to another goroutine instead.
type Replica struct {
	mu       sync.Mutex
	store    *EntityStore
	resolver *Resolver
	registry *Registry
	tracker  *CurrentUserTracker
	feeds    map[entity.Collection]FeedStatus
	logger   *slog.Logger
}

// New returns an empty replica.
func New(opts Options, logger *slog.Logger) *Replica {
	store := NewEntityStore()
	resolver := NewResolver(store, logger, opts.ReresolvePending)

	return &Replica{
		store:    store,
		resolver: resolver,
		registry: NewRegistry(),
		tracker:  newCurrentUserTracker(store.Users, resolver),
		feeds:    make(map[entity.Collection]FeedStatus),
		logger:   logger,
	}
}

// pass collects what a batch touched.
type pass struct {
	dirty Interest
	user  bool
}

// Apply applies one batch of collection c, then broadcasts the touched
// kinds once. Changes that do not fit the local layout are skipped.
func (r *Replica) Apply(c entity.Collection, batch repository.Batch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind, ok := KindOf(c)
	if !ok {
		r.logger.Warn("batch for unknown collection", slog.String("collection", c.String()))

		return
	}

	var p pass
	if kind != KindUser {
		p.dirty |= InterestIn(kind)
	}
	if batch.Reset {
		r.store.reset(c)
		if c == entity.CollectionUsers && r.tracker.ID() != "" {
			p.user = true
		}
	}
	for _, ch := range batch.Changes {
		r.applyChange(c, ch, &p)
	}

	for _, k := range p.dirty.Kinds() {
		if e, ok := r.snapshot(k); ok {
			r.registry.Broadcast(e)
		}
	}
	if p.user {
		r.registry.Broadcast(r.tracker.Refresh())
	}
}

func (r *Replica) applyChange(c entity.Collection, ch repository.Change, p *pass) {
	switch ch.Kind {
	case repository.ChangeAdded, repository.ChangeModified:
		e, _ := Decode(c, ch.ID, ch.Record)
		r.resolver.Resolve(e)
		if ch.Kind == repository.ChangeAdded {
			if !r.store.insertAt(ch.NewIndex, e) {
				r.logger.Debug("duplicate add ignored",
					slog.String("collection", c.String()),
					slog.String("id", ch.ID),
				)

				return
			}
		} else if !r.store.replaceAt(ch.OldIndex, ch.NewIndex, e) {
			r.outOfOrder(c, ch)

			return
		}
		r.revisit(entity.NewRef(c, ch.ID), p)
	case repository.ChangeRemoved:
		if !r.store.removeAt(c, ch.OldIndex, ch.ID) {
			r.outOfOrder(c, ch)

			return
		}
	default:
		return
	}
	if c == entity.CollectionUsers && r.tracker.Affects(ch.ID) {
		p.user = true
	}
}

func (r *Replica) outOfOrder(c entity.Collection, ch repository.Change) {
	r.logger.Warn(domainerrors.ErrOutOfOrderChange.Message(),
		slog.String("collection", c.String()),
		slog.String("kind", ch.Kind.String()),
		slog.String("id", ch.ID),
		slog.Int("oldIndex", ch.OldIndex),
		slog.Int("newIndex", ch.NewIndex),
		slog.Int("size", r.store.Len(c)),
	)
}

// revisit re-resolves, copy on write, the entities that were waiting for
// ref. It is a no-op unless pending tracking is enabled.
func (r *Replica) revisit(ref entity.Ref, p *pass) {
	for _, dep := range r.resolver.Arrived(ref) {
		switch dep.Collection {
		case entity.CollectionArtists:
			if v, ok := r.store.Artists.LookupByID(dep.ID); ok {
				cp := *v
				r.resolver.Resolve(&cp)
				r.store.Artists.Swap(&cp)
				p.dirty |= InterestArtist
			}
		case entity.CollectionAlbums:
			if v, ok := r.store.Albums.LookupByID(dep.ID); ok {
				cp := *v
				r.resolver.Resolve(&cp)
				r.store.Albums.Swap(&cp)
				p.dirty |= InterestAlbum
			}
		case entity.CollectionPhotocards:
			if v, ok := r.store.Photocards.LookupByID(dep.ID); ok {
				cp := *v
				r.resolver.Resolve(&cp)
				r.store.Photocards.Swap(&cp)
				p.dirty |= InterestPhotocard
			}
		case entity.CollectionListings:
			if v, ok := r.store.Listings.LookupByID(dep.ID); ok {
				cp := *v
				r.resolver.Resolve(&cp)
				r.store.Listings.Swap(&cp)
				p.dirty |= InterestListing
			}
		case entity.CollectionUsers:
			if r.tracker.Affects(dep.ID) {
				p.user = true
			}
		}
	}
}

// snapshot builds the replay event of kind k. The caller holds r.mu.
func (r *Replica) snapshot(k Kind) (Event, bool) {
	switch k {
	case KindIdol:
		return IdolsChanged{Idols: r.store.Idols.Snapshot()}, true
	case KindArtist:
		return ArtistsChanged{Artists: r.store.Artists.Snapshot()}, true
	case KindAlbum:
		return AlbumsChanged{Albums: r.store.Albums.Snapshot()}, true
	case KindPhotocard:
		return PhotocardsChanged{Photocards: r.store.Photocards.Snapshot()}, true
	case KindListing:
		return ListingsChanged{Listings: r.store.Listings.Snapshot()}, true
	case KindUser:
		if r.tracker.User() == nil {
			return nil, false
		}

		return UserChanged{UserID: r.tracker.ID(), User: r.tracker.User()}, true
	case KindFeedStatus:
		if len(r.feeds) == 0 {
			return nil, false
		}

		return FeedStatusChanged{Statuses: r.feedStatuses()}, true
	default:
		return nil, false
	}
}

type lockedSnapshotter struct {
	r *Replica
}

func (s lockedSnapshotter) Snapshot(k Kind) (Event, bool) {
	return s.r.snapshot(k)
}

// AddListener registers l and replays the current state of every kind it
// is interested in before returning.
func (r *Replica) AddListener(l Listener) Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.registry.Add(l, lockedSnapshotter{r: r})
}

// RemoveListener unregisters sub. Safe to call from a listener callback.
func (r *Replica) RemoveListener(sub Subscription) bool {
	return r.registry.Remove(sub)
}

// Listeners returns the number of registered listeners.
func (r *Replica) Listeners() int {
	return r.registry.Len()
}

// TrackUser makes id the current user. An empty id clears it.
func (r *Replica) TrackUser(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, changed := r.tracker.Track(id); changed {
		r.logger.Info("current user changed", slog.String("userID", id))
		r.registry.Broadcast(e)
	}
}

// CurrentUserID returns the tracked user id.
func (r *Replica) CurrentUserID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tracker.ID()
}

// CurrentUser returns the tracked user with its lists resolved, nil when
// its record is not known yet.
func (r *Replica) CurrentUser() *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tracker.User()
}

func (r *Replica) Idols() []*entity.Idol {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Idols.Snapshot()
}

func (r *Replica) Artists() []*entity.Artist {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Artists.Snapshot()
}

func (r *Replica) Albums() []*entity.Album {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Albums.Snapshot()
}

func (r *Replica) Photocards() []*entity.Photocard {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Photocards.Snapshot()
}

func (r *Replica) Listings() []*entity.Listing {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Listings.Snapshot()
}

func (r *Replica) Users() []*entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Users.Snapshot()
}

// Lookup returns the stored entity ref points at, or nil.
func (r *Replica) Lookup(ref entity.Ref) entity.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Lookup(ref)
}

// ReportFeedStatus records the state of a feed and notifies listeners.
func (r *Replica) ReportFeedStatus(s FeedStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feeds[s.Collection] = s
	r.registry.Broadcast(FeedStatusChanged{Changed: s.Collection, Statuses: r.feedStatuses()})
}

// FeedStatuses returns the last reported state of every feed.
func (r *Replica) FeedStatuses() []FeedStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.feedStatuses()
}

func (r *Replica) feedStatuses() []FeedStatus {
	statuses := make([]FeedStatus, 0, len(r.feeds))
	for _, c := range entity.Collections() {
		if s, ok := r.feeds[c]; ok {
			statuses = append(statuses, s)
		}
	}

	return statuses
}
