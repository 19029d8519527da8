package replica

import (
	"slices"
	"sync"
)

// Listener receives the events matching its interest.
type Listener interface {
	Interest() Interest
	OnEvent(Event)
}

type listenerFunc struct {
	interest Interest
	fn       func(Event)
}

func (l *listenerFunc) Interest() Interest { return l.interest }
func (l *listenerFunc) OnEvent(e Event)    { l.fn(e) }

// ListenerFunc adapts a function to a Listener.
func ListenerFunc(interest Interest, fn func(Event)) Listener {
	return &listenerFunc{interest: interest, fn: fn}
}

// Subscription identifies a registered listener.
type Subscription uint64

// Snapshotter produces the replay event of a kind from current state.
type Snapshotter interface {
	Snapshot(k Kind) (Event, bool)
}

type registration struct {
	sub      Subscription
	listener Listener
}

// Registry is the ordered set of listeners. It does not call back into
// the Snapshotter outside Add.
type Registry struct {
	mu      sync.Mutex
	next    Subscription
	entries []registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers l and synchronously replays, once per matching kind, the
// current state produced by src.
func (r *Registry) Add(l Listener, src Snapshotter) Subscription {
	r.mu.Lock()
	r.next++
	sub := r.next
	r.entries = append(r.entries, registration{sub: sub, listener: l})
	r.mu.Unlock()

	for _, k := range l.Interest().Kinds() {
		if e, ok := src.Snapshot(k); ok {
			l.OnEvent(e)
		}
	}

	return sub
}

// Remove unregisters sub. A broadcast already iterating finishes its pass.
func (r *Registry) Remove(sub Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.entries, func(e registration) bool { return e.sub == sub })
	if idx < 0 {
		return false
	}
	r.entries = slices.Delete(r.entries, idx, idx+1)

	return true
}

// Len returns the number of listeners.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Broadcast delivers e, in registration order, to the listeners registered
// when the call started whose interest includes its kind.
func (r *Registry) Broadcast(e Event) int {
	r.mu.Lock()
	entries := slices.Clone(r.entries)
	r.mu.Unlock()

	delivered := 0
	for _, entry := range entries {
		if entry.listener.Interest().Has(e.Kind()) {
			entry.listener.OnEvent(e)
			delivered++
		}
	}

	return delivered
}
