// Package shutdown implements the final-shutdown sequence: once the
// arbiter loop has observed a sticky stop-kind flag and both long-lived
// children have drained, it restores saved stdio, closes the log pipe,
// and, for SystemRoot only, syncs and issues the terminal reboot
// syscall the sticky stop kind selects.
package shutdown

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"

	"rootsv/bringup"
	"rootsv/events"
	"rootsv/logpipe"
	"rootsv/platform"
)

// ModeFor maps the sticky stop-kind event that triggered termination to
// the platform.RebootMode the final syscall should use. Any terminal
// state other than the three named here falls back to a plain restart.
func ModeFor(kind events.EventKind) platform.RebootMode {
	switch kind {
	case events.FastPoweroff:
		return platform.RebootPowerOff
	case events.FastHalt:
		return platform.RebootHalt
	case events.FastPowercycle:
		return platform.RebootPowerCycle
	default:
		return platform.RebootRestart
	}
}

// ClosePipe restores saved stdio into 1 and 2, then closes both ends of
// pipe so a cyclog still blocked reading it observes EOF.
// This is the step that actually causes cyclog to exit once the service
// manager slot has drained; it must run while cyclog may still be
// running, not only once the loop has already reached its terminal
// condition. Safe to call more than once: Pipe.CloseRead/CloseWrite are
// no-ops once already closed, and restoring saved stdio a second time
// into the same descriptors is harmless.
func ClosePipe(saved bringup.SavedStdio, pipe *logpipe.Pipe, log *slog.Logger) {
	if saved[1] != nil {
		if err := unix.Dup2(int(saved[1].Fd()), 1); err != nil {
			log.Warn("restore saved stdout", "error", err)
		}
	}
	if saved[2] != nil {
		if err := unix.Dup2(int(saved[2].Fd()), 2); err != nil {
			log.Warn("restore saved stderr", "error", err)
		}
	}

	if err := pipe.CloseRead(); err != nil {
		log.Warn("close log pipe read end", "error", err)
	}
	if err := pipe.CloseWrite(); err != nil {
		log.Warn("close log pipe write end", "error", err)
	}
}

// Finalize restores saved stdio and closes the log pipe (idempotent if
// the arbiter already called ClosePipe while cyclog was draining), and
// for SystemRoot syncs and reboots with the mode ModeFor(kind)
// selects. For UserSessionRoot it returns nil so the caller exits
// success; a per-user root never touches the reboot syscall.
//
// rebootFn is injected so tests can observe which mode was chosen
// without actually rebooting the test host.
func Finalize(mode platform.Mode, kind events.EventKind, saved bringup.SavedStdio, pipe *logpipe.Pipe, log *slog.Logger, rebootFn func(platform.RebootMode) error) error {
	ClosePipe(saved, pipe, log)

	if mode != platform.SystemRoot {
		return nil
	}

	unix.Sync()

	if platform.InJail() {
		// A jailed/containerised root has no machine to reboot; its
		// exit is the container's shutdown.
		log.Info("running in a container, skipping reboot syscall")
		return nil
	}

	rebootMode := ModeFor(kind)
	if rebootFn == nil {
		rebootFn = platform.RebootSyscall
	}
	if err := rebootFn(rebootMode); err != nil {
		return fmt.Errorf("shutdown: reboot: %w", err)
	}
	return nil
}
