package replica

import (
	"log/slog"
	"sync"
	"testing"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
)

func newTestReplica(t *testing.T, opts Options) *Replica {
	t.Helper()

	return New(opts, slog.New(slog.DiscardHandler))
}

func added(id string, pos int, rec repository.Record) repository.Change {
	return repository.Change{Kind: repository.ChangeAdded, OldIndex: -1, NewIndex: pos, ID: id, Record: rec}
}

func modified(id string, oldPos, newPos int, rec repository.Record) repository.Change {
	return repository.Change{Kind: repository.ChangeModified, OldIndex: oldPos, NewIndex: newPos, ID: id, Record: rec}
}

func removed(id string, pos int) repository.Change {
	return repository.Change{Kind: repository.ChangeRemoved, OldIndex: pos, NewIndex: -1, ID: id}
}

func batchOf(changes ...repository.Change) repository.Batch {
	return repository.Batch{Changes: changes}
}

func ref(c entity.Collection, id string) entity.Ref {
	return entity.NewRef(c, id)
}

func refs(c entity.Collection, ids ...string) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.NewRef(c, id))
	}

	return out
}

// recorder keeps every event it receives.
type recorder struct {
	mu       sync.Mutex
	interest Interest
	events   []Event
}

func newRecorder(interest Interest) *recorder {
	return &recorder{interest: interest}
}

func (r *recorder) Interest() Interest { return r.interest }

func (r *recorder) OnEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

func (r *recorder) ofKind(k Kind) []Event {
	var out []Event
	for _, e := range r.all() {
		if e.Kind() == k {
			out = append(out, e)
		}
	}

	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
