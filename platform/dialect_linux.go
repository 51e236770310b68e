//go:build linux

package platform

import "syscall"

// sigrtmin is glibc's runtime SIGRTMIN, not the kernel's raw value: the
// C library reserves signals 32 and 33 for its own use (NPTL thread
// cancellation/setuid), so the first real-time signal available to
// applications is 34.
const sigrtmin = 34

func rt(offset int) syscall.Signal {
	return syscall.Signal(sigrtmin + offset)
}

// kbrequestSignal is what /dev/tty0's KDSIGACCEPT routes the VT
// keyboard-request key to (the systemd-sysvcompat convention); sakSignal
// is what the kernel delivers to PID 1 for ctrl-alt-del once the default
// CAD action has been disabled during bring-up.
const (
	kbrequestSignal = syscall.SIGWINCH
	sakSignal       = syscall.SIGINT
)

var systemSignalTable = map[syscall.Signal]EventKind{
	syscall.SIGCHLD: Child,
	syscall.SIGPWR:  Power,
	kbrequestSignal: KBRequest,
	sakSignal:       SAK,
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

// userForcedRebootSignal is the one RT signal the user dialect still
// recognises, folded to fasthalt because a per-user root cannot request
// a machine-level reboot.
var userForcedRebootSignal = rt(5)

func (userDialect) Signal(sig syscall.Signal) (EventKind, bool) {
	switch sig {
	// SIGPIPE folding to Halt (rather than being ignored) is inherited,
	// surprising behaviour: a per-user root that loses its controlling
	// terminal halts instead of continuing unattended.
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
