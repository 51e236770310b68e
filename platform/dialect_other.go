//go:build !linux && !freebsd

package platform

import "syscall"

// systemSignalTable for platforms without real-time signals. Besides
// SIGCHLD, only sysinit (SIGUSR1) and rescue (SIGUSR2) have a legacy
// signal here; the other verbs are reachable only through the FIFO
// command bytes, and power, kbrequest and SAK not at all. This module targets Linux and
// FreeBSD for SystemRoot bring-up (see platform.Mounter), but the
// event-flag mapping itself must still compile on any Unix so
// UserSessionRoot and the fakes in fake.go are portable.
var systemSignalTable = map[syscall.Signal]EventKind{
	syscall.SIGCHLD: Child,
	syscall.SIGUSR1: Sysinit,
	syscall.SIGUSR2: Rescue,
}

func (systemDialect) Signal(sig syscall.Signal) (EventKind, bool) {
	kind, ok := systemSignalTable[sig]
	return kind, ok
}

func (userDialect) Signal(sig syscall.Signal) (EventKind, bool) {
	switch sig {
	case syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGPIPE:
		return Halt, true
	case syscall.SIGCHLD:
		return Child, true
	default:
		return Unknown, false
	}
}

// CandidateSignals lists every signal the dialect for mode might map, so
// Intake.WatchSignals has the full candidate set to register with the
// event queue without needing to enumerate the per-dialect tables itself.
func CandidateSignals(mode Mode) []syscall.Signal {
	if mode == SystemRoot {
		sigs := make([]syscall.Signal, 0, len(systemSignalTable))
		for s := range systemSignalTable {
			sigs = append(sigs, s)
		}
		return sigs
	}
	return []syscall.Signal{
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGPIPE, syscall.SIGCHLD,
	}
}
