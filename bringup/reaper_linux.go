//go:build linux

package bringup

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"

	"rootsv/rootsverr"
)

// disableCtrlAltDel disables the kernel's default Ctrl-Alt-Del action
// (which would otherwise immediately reboot) and routes KDSIGACCEPT on
// /dev/tty0 to the kbrequest signal, so both key combinations become
// signals this process arbitrates instead of kernel-level actions.
func disableCtrlAltDel(log *slog.Logger) {
	if err := unix.Reboot(unix.LINUX_REBOOT_CMD_CAD_OFF); err != nil {
		logErr(log, "disable ctrl-alt-del", rootsverr.ErrInternal, err)
	}

	tty0, err := os.OpenFile("/dev/tty0", os.O_RDWR, 0)
	if err != nil {
		// No VT subsystem (container, serial-only machine); nothing to
		// route kbrequest through.
		return
	}
	defer tty0.Close()
	if err := unix.IoctlSetInt(int(tty0.Fd()), kdsigaccept, kbrequestSignalNumber); err != nil {
		logErr(log, "route kbrequest via KDSIGACCEPT", rootsverr.ErrInternal, err)
	}
}

// kbrequestSignalNumber mirrors platform.kbrequestSignal (dialect_linux.go):
// kept as a local constant since that one is unexported across packages.
const kbrequestSignalNumber = int(unix.SIGWINCH)

// kdsigaccept is linux/kd.h's KDSIGACCEPT ioctl, not exposed by
// golang.org/x/sys/unix.
const kdsigaccept = 0x4B4E

// becomeSubreaper registers a UserSessionRoot as a child subreaper
// (PR_SET_CHILD_SUBREAPER) so orphaned grandchildren of supervised
// services are reparented to this process rather than the system's
// real PID 1.
func becomeSubreaper(log *slog.Logger) {
	if err := unix.Prctl(unix.PR_SET_CHILD_SUBREAPER, 1, 0, 0, 0); err != nil {
		logErr(log, "become subreaper", rootsverr.ErrInternal, err)
	}
}
