package events

import (
	"fmt"
	"strings"
	"syscall"
)

// signalNames maps the common POSIX signals to their conventional short
// names, used by the "ended" log line so operators see TERM rather than
// a bare 15.
var signalNames = map[syscall.Signal]string{
	syscall.SIGHUP:  "HUP",
	syscall.SIGINT:  "INT",
	syscall.SIGQUIT: "QUIT",
	syscall.SIGILL:  "ILL",
	syscall.SIGTRAP: "TRAP",
	syscall.SIGABRT: "ABRT",
	syscall.SIGBUS:  "BUS",
	syscall.SIGFPE:  "FPE",
	syscall.SIGKILL: "KILL",
	syscall.SIGUSR1: "USR1",
	syscall.SIGSEGV: "SEGV",
	syscall.SIGUSR2: "USR2",
	syscall.SIGPIPE: "PIPE",
	syscall.SIGALRM: "ALRM",
	syscall.SIGTERM: "TERM",
	syscall.SIGCHLD: "CHLD",
	syscall.SIGCONT: "CONT",
	syscall.SIGSTOP: "STOP",
	syscall.SIGTSTP: "TSTP",
	syscall.SIGTTIN: "TTIN",
	syscall.SIGTTOU: "TTOU",
	syscall.SIGURG:  "URG",
	syscall.SIGXCPU: "XCPU",
	syscall.SIGXFSZ: "XFSZ",
	syscall.SIGIO:   "IO",
}

// SignalName returns the conventional short name for sig (e.g. "TERM"),
// or "SIG<n>" if sig is not in the known table; real-time signals in
// particular have no fixed conventional name.
func SignalName(sig syscall.Signal) string {
	if name, ok := signalNames[sig]; ok {
		return name
	}
	return fmt.Sprintf("SIG%d", int(sig))
}

// ParseSignalName parses a signal name (with or without the SIG prefix,
// case-insensitive) or a bare number back into a syscall.Signal.
func ParseSignalName(s string) (syscall.Signal, error) {
	trimmed := strings.ToUpper(strings.TrimPrefix(strings.ToUpper(s), "SIG"))
	for sig, name := range signalNames {
		if name == trimmed {
			return sig, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
		return syscall.Signal(n), nil
	}
	return 0, fmt.Errorf("unknown signal: %s", s)
}
