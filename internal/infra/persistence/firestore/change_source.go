// Package firestore implements the persistence layer on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"
	"sync"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"

	"cloud.google.com/go/firestore"
)

// changeSource watches Firestore collections through query snapshots.
type changeSource struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewChangeSource is the constructor for the Firestore change source.
func NewChangeSource(client *firestore.Client, logger *slog.Logger) repository.ChangeSource {
	return &changeSource{
		client: client,
		logger: logger,
	}
}

// Subscribe opens a snapshot listener on the whole collection.
func (s *changeSource) Subscribe(ctx context.Context, collection entity.Collection) (repository.ChangeStream, error) {
	if !collection.Valid() {
		return nil, errors.Errorf("unknown collection %q", collection)
	}
	s.logger.Debug("subscribing to collection", slog.String("collection", collection.String()))

	return &changeStream{
		it: s.client.Collection(collection.String()).Snapshots(ctx),
	}, nil
}

type changeStream struct {
	it   *firestore.QuerySnapshotIterator
	once sync.Once
}

// Next converts the next query snapshot into a batch.
func (st *changeStream) Next() (repository.Batch, error) {
	snap, err := st.it.Next()
	if err != nil {
		return repository.Batch{}, errors.WithStack(err)
	}

	changes := make([]repository.Change, 0, len(snap.Changes))
	for _, ch := range snap.Changes {
		if ch.Doc == nil || ch.Doc.Ref == nil {
			continue
		}
		changes = append(changes, toChange(ch.Kind, ch.OldIndex, ch.NewIndex, ch.Doc.Ref.ID, ch.Doc.Data()))
	}

	return repository.Batch{Changes: changes}, nil
}

// Stop releases the listener.
func (st *changeStream) Stop() {
	st.once.Do(st.it.Stop)
}

func toChange(kind firestore.DocumentChangeKind, oldIndex, newIndex int, id string, data map[string]any) repository.Change {
	ch := repository.Change{
		OldIndex: oldIndex,
		NewIndex: newIndex,
		ID:       id,
		Record:   toRecord(data),
	}
	switch kind {
	case firestore.DocumentAdded:
		ch.Kind = repository.ChangeAdded
	case firestore.DocumentModified:
		ch.Kind = repository.ChangeModified
	case firestore.DocumentRemoved:
		ch.Kind = repository.ChangeRemoved
	}

	return ch
}

// toRecord replaces document references with entity references, at any
// depth, so the replica never sees Firestore types.
func toRecord(data map[string]any) repository.Record {
	if data == nil {
		return nil
	}
	rec := make(repository.Record, len(data))
	for k, v := range data {
		rec[k] = toValue(v)
	}

	return rec
}

func toValue(v any) any {
	switch val := v.(type) {
	case *firestore.DocumentRef:
		return toRef(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toValue(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toValue(item)
		}

		return out
	default:
		return v
	}
}

func toRef(doc *firestore.DocumentRef) entity.Ref {
	if doc == nil {
		return entity.Ref{}
	}
	var collection entity.Collection
	if doc.Parent != nil {
		collection = entity.Collection(doc.Parent.ID)
	}

	return entity.NewRef(collection, doc.ID)
}
