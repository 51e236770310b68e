package bringup

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"rootsv/platform"
	"rootsv/rootsverr"
)

// sessionAndCWD sanitises the root's own process state: become session
// leader, set the login name to "root" where supported, detach from any
// inherited controlling terminal, chdir to "/", and reset umask to 022.
// All of this is best-effort; a supervision root re-executed by something
// other than the kernel (tests, a container entrypoint) may already be
// a session leader or have no controlling terminal, and neither is
// fatal.
func sessionAndCWD(mode platform.Mode, log *slog.Logger) {
	if _, err := unix.Setsid(); err != nil && err != unix.EPERM {
		logErr(log, "setsid", rootsverr.ErrInternal, err)
	}

	if mode == platform.SystemRoot {
		setLoginName(log)
		detachControllingTTY(log)
	}

	if err := os.Chdir("/"); err != nil {
		logErr(log, "chdir /", rootsverr.ErrInternal, err)
	}
	unix.Umask(0022)
}

// setLoginName is a documented no-op: setlogin(2)/login_tty(3) have no
// portable golang.org/x/sys/unix binding across this module's Linux and
// FreeBSD targets, and the one platform where it matters (FreeBSD, via
// setlogin(2)) is covered by the external chain-loading tool family.
// Left here as a named step rather than silently dropped so the
// bring-up sequence stays visible in full.
func setLoginName(log *slog.Logger) {}

func detachControllingTTY(log *slog.Logger) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		// No controlling terminal to detach from; the common case for
		// a kernel-started PID 1.
		return
	}
	defer tty.Close()
	if err := unix.IoctlSetInt(int(tty.Fd()), unix.TIOCNOTTY, 0); err != nil {
		logErr(log, "detach controlling tty", rootsverr.ErrInternal, err)
	}
}
