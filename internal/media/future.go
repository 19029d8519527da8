package media

import (
	"context"
	"sync"
)

// State is the progress of a Future.
type State int

const (
	Fetching State = iota
	Found
	Failed
)

func (s State) String() string {
	switch s {
	case Fetching:
		return "fetching"
	case Found:
		return "found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Future is the eventual bytes of an image. It settles exactly once.
type Future struct {
	done chan struct{}

	mu    sync.Mutex
	state State
	data  []byte
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{}), state: Fetching}
}

func settled(data []byte, err error) *Future {
	f := newFuture()
	f.settle(data, err)

	return f
}

func (f *Future) settle(data []byte, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Fetching {
		return
	}
	if err != nil {
		f.state, f.err = Failed, err
	} else {
		f.state, f.data = Found, data
	}
	close(f.done)
}

// Done is closed once the future settles.
func (f *Future) Done() <-chan struct{} { return f.done }

// State reports the current state without blocking.
func (f *Future) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Wait blocks until the future settles or ctx is done. A ctx error leaves
// the future running.
func (f *Future) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.data, f.err
}
