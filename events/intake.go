package events

import (
	"context"
	"fmt"
	"log/slog"
	"syscall"

	"rootsv/platform"
)

// Intake owns the event queue and the dialect used to interpret whatever
// it delivers, and raises Pending flags from both signals and FIFO bytes.
type Intake struct {
	queue   platform.EventQueue
	dialect platform.Dialect
	pending *Pending
	log     *slog.Logger
}

// NewIntake constructs an Intake bound to queue, using the dialect
// appropriate for mode, writing into pending.
func NewIntake(queue platform.EventQueue, mode platform.Mode, pending *Pending, log *slog.Logger) *Intake {
	return &Intake{
		queue:   queue,
		dialect: platform.NewDialect(mode),
		pending: pending,
		log:     log,
	}
}

// WatchSignals registers every signal the dialect for this mode
// recognises with the event queue. Callers pass the full candidate list
// (every signal the platform dialect might map) since Dialect.Signal only
// answers "is this one recognised", it does not enumerate them.
func (i *Intake) WatchSignals(candidates []syscall.Signal) error {
	for _, sig := range candidates {
		if _, ok := i.dialect.Signal(sig); !ok {
			continue
		}
		if err := i.queue.WatchSignal(sig); err != nil {
			return fmt.Errorf("watch signal %v: %w", sig, err)
		}
	}
	return nil
}

// WatchFIFO registers fd (the read end of the command FIFO) with the
// event queue.
func (i *Intake) WatchFIFO(fd int) error {
	return i.queue.WatchReadable(fd)
}

// Pump blocks on the event queue once and raises every Pending flag the
// delivered signals and FIFO bytes (read from fifoFD) map to. It returns
// when ctx is done or the queue reports an error.
func (i *Intake) Pump(ctx context.Context, fifoFD int) error {
	ready, err := i.queue.Wait(ctx)
	if err != nil {
		return err
	}

	for _, sig := range ready.Signals {
		kind, ok := i.dialect.Signal(sig)
		if !ok {
			i.pending.Set(Unknown)
			continue
		}
		i.pending.Set(kind)
	}

	for _, fd := range ready.ReadableFDs {
		if fd != fifoFD {
			continue
		}
		if err := i.drainFIFO(fifoFD); err != nil {
			i.log.Warn("fifo read", "error", err)
		}
	}

	return nil
}

// drainFIFO reads and dispatches every currently-available command byte
// from the FIFO before the next event-queue wait; a burst of several
// fifo writes (e.g. from a fast shutdown script) must not be coalesced
// into a single flag.
func (i *Intake) drainFIFO(fd int) error {
	buf := make([]byte, 512)
	for {
		n, err := readNonBlocking(fd, buf)
		if n <= 0 {
			return err
		}
		for _, b := range buf[:n] {
			kind, ok := i.dialect.FIFOByte(b)
			if !ok {
				i.pending.Set(Unknown)
				continue
			}
			i.pending.Set(kind)
		}
		if n < len(buf) {
			return nil
		}
	}
}
