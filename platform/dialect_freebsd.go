//go:build freebsd

package platform

import "syscall"

// sigrtmin is FreeBSD's first real-time signal (SIGRTMIN); the range
// 65-126 is reserved for them (_SIG_MAXSIG is 128).
const sigrtmin = 65

func rt(offset int) syscall.Signal {
	return syscall.Signal(sigrtmin + offset)
}

// FreeBSD has no SIGPWR and no dedicated kbrequest/SAK signals, and the
// FIFO command vocabulary has no byte for them either, so power,
// kbrequest and SAK are never raised on this platform.
var systemSignalTable = map[syscall.Signal]EventKind{
	syscall.SIGCHLD: Child,
	rt(0):           Normal,
	rt(1):           Rescue,
	rt(2):           Emergency,
	rt(3):           Halt,
	rt(4):           Poweroff,
	rt(5):           Reboot,
	rt(7):           Powercycle,
	rt(10):          Sysinit,
	rt(13):          FastHalt,
	rt(14):          FastPoweroff,
	rt(15):          FastReboot,
	rt(17):          FastPowercycle,
	rt(26):          RestartLoggerKeepCWD,
	rt(27):          RestartLoggerResetCWD,
	rt(28):          RestartLoggerCycleDirs,
}

func (systemDialect) Signal(sig syscall.Signal) (EventKind, bool) {
	kind, ok := systemSignalTable[sig]
	return kind, ok
}

var userForcedRebootSignal = rt(5)

func (userDialect) Signal(sig syscall.Signal) (EventKind, bool) {
	switch sig {
	case syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGPIPE:
		return Halt, true
	case userForcedRebootSignal:
		return FastHalt, true
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
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGPIPE,
		userForcedRebootSignal, syscall.SIGCHLD,
	}
}
