package arbiter

import (
	"rootsv/registry"
	"rootsv/shutdown"
)

// drainLogPipe implements the pipe-close half of shutdown: once a
// stop-kind flag has latched and the service manager slot is empty, the
// root closes both ends of the log pipe so cyclog sees EOF and exits.
// This must happen while cyclog may still be running; it is what
// causes cyclog's exit, not something that waits for it; so it runs
// every iteration once the precondition holds, rather than only from
// finalShutdown (which only runs once cyclog, the thing this unblocks,
// has already gone away).
func (a *Arbiter) drainLogPipe() {
	if a.pipeDrained {
		return
	}
	if !a.stopping || a.cfg.Registry.Get(registry.ServiceManager).Present() {
		return
	}
	shutdown.ClosePipe(a.cfg.Saved, a.cfg.Pipe, a.cfg.Log)
	a.pipeDrained = true
}

// finalShutdown runs once Iterate has reported the loop's terminal
// condition: restore saved stdio, close the log pipe (a no-op
// if drainLogPipe already did it), and (for SystemRoot) sync and reboot
// with the mode the sticky stop kind selects.
func (a *Arbiter) finalShutdown() error {
	for slot, cancel := range a.alarms {
		cancel()
		delete(a.alarms, slot)
	}
	return shutdown.Finalize(a.cfg.Mode, a.stopKind, a.cfg.Saved, a.cfg.Pipe, a.cfg.Log, a.cfg.Reboot)
}
