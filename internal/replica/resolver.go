package replica

import (
	"log/slog"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
)

// Resolver fills the direct associations of an entity from the store as
// it is at call time. A missing referent leaves a single association nil
// and is dropped from a list. Resolution never fails.
//
// With pending tracking enabled, every miss is remembered against the
// missing reference so the caller can revisit the dependents when the
// referent arrives.
type Resolver struct {
	store   *EntityStore
	logger  *slog.Logger
	pending map[entity.Ref]map[entity.Ref]struct{}
}

// NewResolver returns a resolver reading from store. trackPending enables
// the pending-resolution queue.
func NewResolver(store *EntityStore, logger *slog.Logger, trackPending bool) *Resolver {
	r := &Resolver{store: store, logger: logger}
	if trackPending {
		r.pending = make(map[entity.Ref]map[entity.Ref]struct{})
	}

	return r
}

// Resolve fills e's associations. Users are resolved by ResolveUserLists
// only; other users' lists are never observed.
func (r *Resolver) Resolve(e entity.Entity) {
	switch v := e.(type) {
	case *entity.Artist:
		dep := v.Ref()
		v.Members = resolveAll(r, r.store.Idols, entity.CollectionIdols, v.MemberRefs, dep)
		v.Albums = resolveAll(r, r.store.Albums, entity.CollectionAlbums, v.AlbumRefs, dep)
	case *entity.Album:
		v.Artist = resolveOne(r, r.store.Artists, entity.CollectionArtists, v.ArtistRef, v.Ref())
	case *entity.Photocard:
		dep := v.Ref()
		v.Idol = resolveOne(r, r.store.Idols, entity.CollectionIdols, v.IdolRef, dep)
		v.Artist = resolveOne(r, r.store.Artists, entity.CollectionArtists, v.ArtistRef, dep)
		v.Album = resolveOne(r, r.store.Albums, entity.CollectionAlbums, v.AlbumRef, dep)
	case *entity.Listing:
		dep := v.Ref()
		v.Photocard = resolveOne(r, r.store.Photocards, entity.CollectionPhotocards, v.PhotocardRef, dep)
		v.Seller = resolveOne(r, r.store.Users, entity.CollectionUsers, v.SellerRef, dep)
		v.Buyer = resolveOne(r, r.store.Users, entity.CollectionUsers, v.BuyerRef, dep)
	}
}

// ResolveUserLists fills the three photocard lists of u.
func (r *Resolver) ResolveUserLists(u *entity.User) {
	dep := u.Ref()
	u.All = resolveAll(r, r.store.Photocards, entity.CollectionPhotocards, u.AllRefs, dep)
	u.Favourites = resolveAll(r, r.store.Photocards, entity.CollectionPhotocards, u.FavouriteRefs, dep)
	u.Wishlist = resolveAll(r, r.store.Photocards, entity.CollectionPhotocards, u.WishlistRefs, dep)
}

// Arrived returns and forgets the dependents waiting for ref.
func (r *Resolver) Arrived(ref entity.Ref) []entity.Ref {
	if r.pending == nil {
		return nil
	}
	waiting, ok := r.pending[ref]
	if !ok {
		return nil
	}
	delete(r.pending, ref)
	deps := make([]entity.Ref, 0, len(waiting))
	for dep := range waiting {
		deps = append(deps, dep)
	}

	return deps
}

// Pending returns the number of missing referents being waited for.
func (r *Resolver) Pending() int {
	return len(r.pending)
}

func (r *Resolver) miss(ref, dependent entity.Ref) {
	r.logger.Debug(domainerrors.ErrUnresolvedReference.Message(),
		slog.String("ref", ref.String()),
		slog.String("dependent", dependent.String()),
	)
	if r.pending == nil {
		return
	}
	waiting, ok := r.pending[ref]
	if !ok {
		waiting = make(map[entity.Ref]struct{})
		r.pending[ref] = waiting
	}
	waiting[dependent] = struct{}{}
}

func resolveOne[T entity.Entity](r *Resolver, c *Collection[T], want entity.Collection, ref, dependent entity.Ref) T {
	v, _ := lookupRef(r, c, want, ref, dependent)

	return v
}

func resolveAll[T entity.Entity](r *Resolver, c *Collection[T], want entity.Collection, refs []entity.Ref, dependent entity.Ref) []T {
	out := make([]T, 0, len(refs))
	for _, ref := range refs {
		if v, ok := lookupRef(r, c, want, ref, dependent); ok {
			out = append(out, v)
		}
	}

	return out
}

func lookupRef[T entity.Entity](r *Resolver, c *Collection[T], want entity.Collection, ref, dependent entity.Ref) (T, bool) {
	var zero T
	if ref.IsZero() {
		return zero, false
	}
	if ref.Collection != "" && ref.Collection != want {
		r.logger.Warn("reference into unexpected collection",
			slog.String("ref", ref.String()),
			slog.String("expected", want.String()),
			slog.String("dependent", dependent.String()),
		)

		return zero, false
	}
	if v, ok := c.LookupByID(ref.ID); ok {
		return v, true
	}
	r.miss(entity.NewRef(want, ref.ID), dependent)

	return zero, false
}
