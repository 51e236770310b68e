// Package platform hides every OS-dialect-specific syscall set (signal
// numbers, the event-queue primitive, the mount API, reboot flags, cgroup
// layout, RTC behaviour) behind a small capability interface so the
// rest of the supervision root (events, bringup, registry, logpipe,
// arbiter, shutdown) is platform-independent. Concrete implementations
// live in build-tagged files (_linux.go, _freebsd.go); tests use the
// in-memory fakes in fake.go.
package platform

import "os"

// Mode selects the signal dialect, the set of startup actions, and the
// log-directory search order. It is fixed once at process start from
// os.Getpid() == 1 and never changes for the life of the process.
type Mode int

const (
	// SystemRoot is PID 1.
	SystemRoot Mode = iota
	// UserSessionRoot is a per-user session supervision root.
	UserSessionRoot
)

func (m Mode) String() string {
	switch m {
	case SystemRoot:
		return "system"
	case UserSessionRoot:
		return "user"
	default:
		return "unknown"
	}
}

// DetectMode determines the RootMode for the current process.
func DetectMode() Mode {
	if os.Getpid() == 1 {
		return SystemRoot
	}
	return UserSessionRoot
}

// EventKind enumerates every flag in the PendingEvents structure.
type EventKind int

const (
	Sysinit EventKind = iota
	Normal
	Rescue
	Emergency
	Halt
	Poweroff
	Powercycle
	Reboot
	FastHalt
	FastPoweroff
	FastPowercycle
	FastReboot
	Power
	KBRequest
	SAK
	RestartLoggerKeepCWD
	RestartLoggerResetCWD
	RestartLoggerCycleDirs
	Child
	Init
	Unknown
)

var eventKindNames = map[EventKind]string{
	Sysinit:                "sysinit",
	Normal:                 "normal",
	Rescue:                 "rescue",
	Emergency:              "emergency",
	Halt:                   "halt",
	Poweroff:               "poweroff",
	Powercycle:             "powercycle",
	Reboot:                 "reboot",
	FastHalt:               "fasthalt",
	FastPoweroff:           "fastpoweroff",
	FastPowercycle:         "fastpowercycle",
	FastReboot:             "fastreboot",
	Power:                  "power",
	KBRequest:              "kbrequest",
	SAK:                    "sak",
	RestartLoggerKeepCWD:   "restart_logger_keep_cwd",
	RestartLoggerResetCWD:  "restart_logger_reset_cwd",
	RestartLoggerCycleDirs: "restart_logger_cycle_dirs",
	Child:                  "child",
	Init:                   "init",
	Unknown:                "unknown",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// StopKinds are the sticky terminal-state flags; once any is set the
// arbiter may only drive the system toward termination.
var StopKinds = []EventKind{FastHalt, FastPoweroff, FastPowercycle, FastReboot}

// IsStopKind reports whether k is one of the sticky stop-kind flags.
func IsStopKind(k EventKind) bool {
	for _, s := range StopKinds {
		if s == k {
			return true
		}
	}
	return false
}
