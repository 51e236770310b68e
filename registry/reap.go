package registry

import (
	"log/slog"
	"syscall"

	"golang.org/x/sys/unix"

	"rootsv/events"
	"rootsv/logging"
)

// StatusKind classifies how a reaped child ended.
type StatusKind int

const (
	Exited StatusKind = iota
	Signalled
	SignalledCore
	Paused
)

func (k StatusKind) String() string {
	switch k {
	case Exited:
		return "Exited"
	case Signalled:
		return "Signalled"
	case SignalledCore:
		return "SignalledCore"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Reaped describes one child the reap loop collected.
type Reaped struct {
	PID    int
	Slot   SlotName
	Known  bool
	Status StatusKind
	Code   int
}

// classify turns a raw wait status into the (StatusKind, code) pair the
// "ended status S code C" log line reports: code is the exit status for
// Exited, the terminating/stopping signal number otherwise.
func classify(ws unix.WaitStatus) (StatusKind, int) {
	switch {
	case ws.Exited():
		return Exited, ws.ExitStatus()
	case ws.Signaled():
		if ws.CoreDump() {
			return SignalledCore, int(ws.Signal())
		}
		return Signalled, int(ws.Signal())
	case ws.Stopped():
		return Paused, int(ws.StopSignal())
	default:
		return Exited, 0
	}
}

// ReapAll drains every immediately-reapable child with a non-blocking
// wait4(-1, WNOHANG), collecting everything ready this iteration. It
// never blocks: an empty return means nothing was ready, not that
// nothing will ever be.
func ReapAll(r *Registry, log *slog.Logger) []Reaped {
	var out []Reaped
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
		if err != nil {
			// ECHILD: no children left to wait for. Anything else is
			// logged and treated as "nothing more ready this pass".
			if err != unix.ECHILD {
				log.Warn("wait4", "error", err)
			}
			return out
		}
		if pid <= 0 {
			return out
		}

		status, code := classify(ws)
		if status == Paused {
			// A stopped (not terminated) child is not a slot vacancy;
			// nothing to reap yet.
			continue
		}

		slot, known := r.SlotOf(pid)
		reaped := Reaped{PID: pid, Slot: slot, Known: known, Status: status, Code: code}

		slotName := "unknown"
		if known {
			r.Clear(slot)
			slotName = slot.String()
		}
		entry := logging.WithEnded(logging.WithChild(log, slotName, pid), status.String(), code)
		if status == Signalled || status == SignalledCore {
			entry = entry.With("signal", SignalName(syscall.Signal(code)))
		}
		entry.Info("ended")
		out = append(out, reaped)
	}
}

// SignalName re-exports events.SignalName for callers that only import
// registry, keeping the "ended status Signalled code N" log line's
// signal-name formatting in one place.
var SignalName = events.SignalName
