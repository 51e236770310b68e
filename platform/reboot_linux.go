//go:build linux

package platform

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// InJail reports whether the process runs inside a container, where the
// final reboot syscall must be skipped (it would be refused, or worse,
// affect the host). Container managers following the systemd convention
// set $container for their payload's PID 1.
func InJail() bool {
	return os.Getenv("container") != ""
}

func reboot(mode RebootMode) error {
	// sync(2) is called by the shutdown package before this runs, not
	// here, so that shutdown keeps ownership of that step regardless of
	// which platform's Reboot implementation ends up invoked.
	var cmd int
	switch mode {
	case RebootRestart:
		cmd = unix.LINUX_REBOOT_CMD_RESTART
	case RebootHalt:
		cmd = unix.LINUX_REBOOT_CMD_HALT
	case RebootPowerOff:
		cmd = unix.LINUX_REBOOT_CMD_POWER_OFF
	case RebootPowerCycle:
		// Linux has no power-cycle reboot command; a plain restart is
		// the documented fallback.
		cmd = unix.LINUX_REBOOT_CMD_RESTART
	default:
		return fmt.Errorf("reboot: unknown mode %d", mode)
	}
	return unix.Reboot(cmd)
}
