package platform

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Ready is the set of events a single EventQueue.Wait call reported.
type Ready struct {
	Signals []syscall.Signal
	// ReadableFDs are listening/command FIFO descriptors with data
	// available to read.
	ReadableFDs []int
}

// Empty reports whether the wait returned with nothing ready (possible
// after an EINTR-equivalent retry inside the implementation).
func (r Ready) Empty() bool {
	return len(r.Signals) == 0 && len(r.ReadableFDs) == 0
}

// EventQueue is the one place the supervision root ever blocks: Wait
// returns once a signal or FIFO readability event arrives.
//
// Signals are delivered through os/signal.Notify; the Go runtime
// already performs the async-signal-safe self-pipe write a C
// implementation would hand-roll, and its handlers do not survive exec,
// so spawned children start with default dispositions with no explicit
// reset step. FIFO readability comes from a real kernel poller (epoll
// on Linux, kqueue on FreeBSD) serviced by a dedicated goroutine.
type EventQueue interface {
	// WatchSignal subscribes sig for delivery as a queue event.
	WatchSignal(sig syscall.Signal) error
	// WatchReadable arms fd for readability events.
	WatchReadable(fd int) error
	// Wait blocks until at least one watched event is ready or ctx is
	// done. A nil error with an Empty Ready means "spurious wake, loop
	// again" (the kqueue/epoll equivalent of EINTR).
	Wait(ctx context.Context) (Ready, error)
	// Close releases the underlying kernel object and unsubscribes the
	// watched signals.
	Close() error
}

// fdPoller is the platform half of notifyQueue: a blocking
// wait-for-readable primitive over a set of registered descriptors.
type fdPoller interface {
	Add(fd int) error
	// Wait blocks until at least one registered fd is readable and
	// returns the batch. EINTR is retried internally.
	Wait() ([]int, error)
	Close() error
}

// notifyQueue combines os/signal.Notify delivery with an fdPoller
// serviced by one background goroutine, presenting both through the
// single Wait suspension point the loop requires.
type notifyQueue struct {
	poller  fdPoller
	sigch   chan os.Signal
	readych chan []int
	errch   chan error
	started bool
}

func newNotifyQueue(p fdPoller) *notifyQueue {
	return &notifyQueue{
		poller:  p,
		sigch:   make(chan os.Signal, 64),
		readych: make(chan []int),
		errch:   make(chan error, 1),
	}
}

func (q *notifyQueue) WatchSignal(sig syscall.Signal) error {
	signal.Notify(q.sigch, sig)
	return nil
}

func (q *notifyQueue) WatchReadable(fd int) error {
	return q.poller.Add(fd)
}

func (q *notifyQueue) Wait(ctx context.Context) (Ready, error) {
	if !q.started {
		q.started = true
		go q.pollLoop()
	}

	select {
	case <-ctx.Done():
		return Ready{}, ctx.Err()
	case err := <-q.errch:
		return Ready{}, err
	case fds := <-q.readych:
		return Ready{ReadableFDs: fds}, nil
	case sig := <-q.sigch:
		ready := Ready{Signals: []syscall.Signal{asSyscallSignal(sig)}}
		// Collect whatever else is already queued so a burst of signals
		// is handled in one loop iteration rather than one wake each.
		for {
			select {
			case s := <-q.sigch:
				ready.Signals = append(ready.Signals, asSyscallSignal(s))
			default:
				return ready, nil
			}
		}
	}
}

func (q *notifyQueue) pollLoop() {
	for {
		fds, err := q.poller.Wait()
		if err != nil {
			q.errch <- err
			return
		}
		if len(fds) > 0 {
			q.readych <- fds
		}
	}
}

func (q *notifyQueue) Close() error {
	signal.Stop(q.sigch)
	return q.poller.Close()
}

func asSyscallSignal(sig os.Signal) syscall.Signal {
	if s, ok := sig.(syscall.Signal); ok {
		return s
	}
	return 0
}
