//go:build freebsd

package bringup

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"rootsv/rootsverr"
)

// disableCtrlAltDel: FreeBSD has no equivalent of Linux's
// RB_DISABLE_CAD kernel action reachable through reboot(2); the nearest
// analogue (disabling the kbd(4) SAK/reboot key combination) is a
// sysctl (kern.secure_level-adjacent) this module does not set, so this
// step logs that it is a no-op on this platform rather than silently
// doing nothing.
func disableCtrlAltDel(log *slog.Logger) {
	log.Info("disable ctrl-alt-del is a no-op on freebsd")
}

// procctl(2) idtype/cmd values for reaper acquisition; x/sys/unix has
// the syscall number but no typed wrapper for this call.
const (
	procctlIDTypePID   = 0 // P_PID
	procctlReapAcquire = 2 // PROC_REAP_ACQUIRE
)

// becomeSubreaper uses FreeBSD's procctl(PROC_REAP_ACQUIRE) equivalent
// of Linux's PR_SET_CHILD_SUBREAPER.
func becomeSubreaper(log *slog.Logger) {
	_, _, errno := unix.Syscall6(unix.SYS_PROCCTL,
		uintptr(procctlIDTypePID), uintptr(os.Getpid()), uintptr(procctlReapAcquire),
		0, 0, 0)
	if errno != 0 {
		logErr(log, "become subreaper", rootsverr.ErrInternal, errno)
	}
}
