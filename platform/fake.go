package platform

import (
	"context"
	"sync"
	"syscall"
)

// FakeEventQueue is an in-memory EventQueue used by package tests
// (events, arbiter) to drive the loop without a real kernel event
// primitive. Inject(Ready) enqueues a result for the next Wait call.
type FakeEventQueue struct {
	mu      sync.Mutex
	pending []Ready
	woken   chan struct{}
	closed  bool
}

// NewFakeEventQueue returns a ready-to-use fake queue.
func NewFakeEventQueue() *FakeEventQueue {
	return &FakeEventQueue{woken: make(chan struct{}, 1)}
}

func (f *FakeEventQueue) WatchSignal(syscall.Signal) error { return nil }
func (f *FakeEventQueue) WatchReadable(int) error          { return nil }

// Inject queues a Ready value to be returned by the next Wait call.
func (f *FakeEventQueue) Inject(r Ready) {
	f.mu.Lock()
	f.pending = append(f.pending, r)
	f.mu.Unlock()
	select {
	case f.woken <- struct{}{}:
	default:
	}
}

// Wait returns the next injected Ready, blocking until one is available
// or ctx is done.
func (f *FakeEventQueue) Wait(ctx context.Context) (Ready, error) {
	for {
		f.mu.Lock()
		if len(f.pending) > 0 {
			r := f.pending[0]
			f.pending = f.pending[1:]
			f.mu.Unlock()
			return r, nil
		}
		f.mu.Unlock()

		select {
		case <-ctx.Done():
			return Ready{}, ctx.Err()
		case <-f.woken:
		}
	}
}

func (f *FakeEventQueue) Close() error {
	f.closed = true
	return nil
}

// Closed reports whether Close has been called; useful for assertions.
func (f *FakeEventQueue) Closed() bool { return f.closed }
