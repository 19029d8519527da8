// Package replica keeps a denormalised in-memory copy of the remote
// catalogue. Change feeds drive an EntityStore, references are resolved
// into direct associations when a change is applied, and every change is
// fanned out to registered listeners filtered by interest.
package replica

import (
	"slices"

	"photocard/internal/domain/entity"
)

// Collection is the ordered list of one kind of entity, in the order the
// remote store reports them. Lookups are linear; collections hold hundreds
// of documents, not millions.
type Collection[T entity.Entity] struct {
	items []T
}

func newCollection[T entity.Entity]() *Collection[T] {
	return &Collection[T]{}
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the entity at pos.
func (c *Collection[T]) At(pos int) (T, bool) {
	if pos < 0 || pos >= len(c.items) {
		var zero T

		return zero, false
	}

	return c.items[pos], true
}

// IndexOf returns the position of id or -1.
func (c *Collection[T]) IndexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.EntityID() == id
	})
}

// LookupByID returns the entity with the given id.
func (c *Collection[T]) LookupByID(id string) (T, bool) {
	if idx := c.IndexOf(id); idx >= 0 {
		return c.items[idx], true
	}
	var zero T

	return zero, false
}

// InsertAt inserts e at pos unless an entity with the same id is already
// present, in which case it does nothing and reports false. pos is clamped
// to the current bounds.
func (c *Collection[T]) InsertAt(pos int, e T) bool {
	if c.IndexOf(e.EntityID()) >= 0 {
		return false
	}
	c.items = slices.Insert(c.items, clamp(pos, len(c.items)), e)

	return true
}

// ReplaceAt removes the entity at oldPos and inserts e at newPos. When
// oldPos is out of bounds nothing happens. When oldPos holds a different
// entity, the entity with e's id is replaced instead, if there is one.
func (c *Collection[T]) ReplaceAt(oldPos, newPos int, e T) bool {
	idx, ok := c.locate(oldPos, e.EntityID())
	if !ok {
		return false
	}
	c.items = slices.Delete(c.items, idx, idx+1)
	c.items = slices.Insert(c.items, clamp(newPos, len(c.items)), e)

	return true
}

// RemoveAt removes the entity at pos. id, when not empty, guards against
// stale positions the same way ReplaceAt does.
func (c *Collection[T]) RemoveAt(pos int, id string) (T, bool) {
	var zero T
	idx, ok := c.locate(pos, id)
	if !ok {
		return zero, false
	}
	removed := c.items[idx]
	c.items = slices.Delete(c.items, idx, idx+1)

	return removed, true
}

// Swap replaces the entity carrying e's id without moving it.
func (c *Collection[T]) Swap(e T) bool {
	idx := c.IndexOf(e.EntityID())
	if idx < 0 {
		return false
	}
	c.items[idx] = e

	return true
}

// Snapshot returns a copy of the ordered entities.
func (c *Collection[T]) Snapshot() []T {
	return slices.Clone(c.items)
}

// Reset drops every entity.
func (c *Collection[T]) Reset() {
	c.items = nil
}

func (c *Collection[T]) locate(pos int, id string) (int, bool) {
	if pos < 0 || pos >= len(c.items) {
		return 0, false
	}
	if id == "" || c.items[pos].EntityID() == id {
		return pos, true
	}
	if idx := c.IndexOf(id); idx >= 0 {
		return idx, true
	}

	return 0, false
}

func clamp(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}

	return pos
}

// EntityStore holds one Collection per watched remote collection.
type EntityStore struct {
	Idols      *Collection[*entity.Idol]
	Artists    *Collection[*entity.Artist]
	Albums     *Collection[*entity.Album]
	Photocards *Collection[*entity.Photocard]
	Listings   *Collection[*entity.Listing]
	Users      *Collection[*entity.User]
}

// NewEntityStore returns an empty store.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		Idols:      newCollection[*entity.Idol](),
		Artists:    newCollection[*entity.Artist](),
		Albums:     newCollection[*entity.Album](),
		Photocards: newCollection[*entity.Photocard](),
		Listings:   newCollection[*entity.Listing](),
		Users:      newCollection[*entity.User](),
	}
}

// Lookup returns the entity a reference points at, or nil.
func (s *EntityStore) Lookup(ref entity.Ref) entity.Entity {
	var (
		found entity.Entity
		ok    bool
	)
	switch ref.Collection {
	case entity.CollectionIdols:
		found, ok = s.Idols.LookupByID(ref.ID)
	case entity.CollectionArtists:
		found, ok = s.Artists.LookupByID(ref.ID)
	case entity.CollectionAlbums:
		found, ok = s.Albums.LookupByID(ref.ID)
	case entity.CollectionPhotocards:
		found, ok = s.Photocards.LookupByID(ref.ID)
	case entity.CollectionListings:
		found, ok = s.Listings.LookupByID(ref.ID)
	case entity.CollectionUsers:
		found, ok = s.Users.LookupByID(ref.ID)
	}
	if !ok {
		return nil
	}

	return found
}

// Len returns the size of a collection.
func (s *EntityStore) Len(c entity.Collection) int {
	switch c {
	case entity.CollectionIdols:
		return s.Idols.Len()
	case entity.CollectionArtists:
		return s.Artists.Len()
	case entity.CollectionAlbums:
		return s.Albums.Len()
	case entity.CollectionPhotocards:
		return s.Photocards.Len()
	case entity.CollectionListings:
		return s.Listings.Len()
	case entity.CollectionUsers:
		return s.Users.Len()
	default:
		return 0
	}
}

func (s *EntityStore) insertAt(pos int, e entity.Entity) bool {
	switch v := e.(type) {
	case *entity.Idol:
		return s.Idols.InsertAt(pos, v)
	case *entity.Artist:
		return s.Artists.InsertAt(pos, v)
	case *entity.Album:
		return s.Albums.InsertAt(pos, v)
	case *entity.Photocard:
		return s.Photocards.InsertAt(pos, v)
	case *entity.Listing:
		return s.Listings.InsertAt(pos, v)
	case *entity.User:
		return s.Users.InsertAt(pos, v)
	default:
		return false
	}
}

func (s *EntityStore) replaceAt(oldPos, newPos int, e entity.Entity) bool {
	switch v := e.(type) {
	case *entity.Idol:
		return s.Idols.ReplaceAt(oldPos, newPos, v)
	case *entity.Artist:
		return s.Artists.ReplaceAt(oldPos, newPos, v)
	case *entity.Album:
		return s.Albums.ReplaceAt(oldPos, newPos, v)
	case *entity.Photocard:
		return s.Photocards.ReplaceAt(oldPos, newPos, v)
	case *entity.Listing:
		return s.Listings.ReplaceAt(oldPos, newPos, v)
	case *entity.User:
		return s.Users.ReplaceAt(oldPos, newPos, v)
	default:
		return false
	}
}

func (s *EntityStore) removeAt(c entity.Collection, pos int, id string) bool {
	var ok bool
	switch c {
	case entity.CollectionIdols:
		_, ok = s.Idols.RemoveAt(pos, id)
	case entity.CollectionArtists:
		_, ok = s.Artists.RemoveAt(pos, id)
	case entity.CollectionAlbums:
		_, ok = s.Albums.RemoveAt(pos, id)
	case entity.CollectionPhotocards:
		_, ok = s.Photocards.RemoveAt(pos, id)
	case entity.CollectionListings:
		_, ok = s.Listings.RemoveAt(pos, id)
	case entity.CollectionUsers:
		_, ok = s.Users.RemoveAt(pos, id)
	}

	return ok
}

func (s *EntityStore) reset(c entity.Collection) {
	switch c {
	case entity.CollectionIdols:
		s.Idols.Reset()
	case entity.CollectionArtists:
		s.Artists.Reset()
	case entity.CollectionAlbums:
		s.Albums.Reset()
	case entity.CollectionPhotocards:
		s.Photocards.Reset()
	case entity.CollectionListings:
		s.Listings.Reset()
	case entity.CollectionUsers:
		s.Users.Reset()
	}
}
