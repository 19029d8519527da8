package repository

import (
	"context"
	"time"

	"photocard/internal/domain/entity"
)

// ChangeKind tells what happened to a document.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeModified
	ChangeRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is one entry of a batch. OldIndex is -1 for additions and
// NewIndex is -1 for removals, matching the remote store's convention.
type Change struct {
	Kind     ChangeKind
	OldIndex int
	NewIndex int
	ID       string
	Record   Record
}

// Batch is the ordered list of changes delivered by one snapshot.
type Batch struct {
	Changes []Change

	// Reset is set on the first batch after a re-subscription: the batch
	// describes the whole collection and replaces the local copy.
	Reset bool
}

// ChangeSource is the boundary with the remote document store.
type ChangeSource interface {
	// Subscribe starts watching a collection. The first batch of a stream
	// lists every document as added. The stream ends when ctx is done.
	Subscribe(ctx context.Context, collection entity.Collection) (ChangeStream, error)
}

// ChangeStream yields batches in delivery order.
type ChangeStream interface {
	// Next blocks until the next batch or a subscription error. It
	// returns an error once the subscription context is done.
	Next() (Batch, error)

	// Stop ends the subscription. It must not be called concurrently
	// with Next.
	Stop()
}

// Record is the raw field map of a document. Foreign keys are entity.Ref
// values, timestamps are time.Time, nested objects are maps.
type Record map[string]any

// String returns the string at key or "".
func (r Record) String(key string) string {
	s, _ := r[key].(string)

	return s
}

// Bool returns the bool at key or false.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)

	return b
}

// Float returns the number at key as a float64. Integers are converted.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Time returns the timestamp at key or the zero time.
func (r Record) Time(key string) time.Time {
	switch v := r[key].(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	}

	return time.Time{}
}

// Ref returns the reference at key or the zero Ref.
func (r Record) Ref(key string) entity.Ref {
	switch v := r[key].(type) {
	case entity.Ref:
		return v
	case *entity.Ref:
		if v != nil {
			return *v
		}
	}

	return entity.Ref{}
}

// Refs returns the ordered references at key. Entries that are not
// references are skipped.
func (r Record) Refs(key string) []entity.Ref {
	switch v := r[key].(type) {
	case []entity.Ref:
		return append([]entity.Ref(nil), v...)
	case []any:
		refs := make([]entity.Ref, 0, len(v))
		for _, item := range v {
			if ref, ok := item.(entity.Ref); ok && !ref.IsZero() {
				refs = append(refs, ref)
			}
		}

		return refs
	default:
		return nil
	}
}

// Image reads the imageName/imageUrl pair stored next to the other fields.
func (r Record) Image() entity.Image {
	return entity.Image{
		Name:    r.String("imageName"),
		Locator: r.String("imageUrl"),
	}
}

// Images reads an ordered list of {name, url} objects at key.
func (r Record) Images(key string) []entity.Image {
	items, _ := r[key].([]any)
	images := make([]entity.Image, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		sub := Record(m)
		images = append(images, entity.Image{
			Name:    sub.String("name"),
			Locator: sub.String("url"),
		})
	}

	return images
}
