//go:build freebsd

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// InJail reports whether the process runs inside a jail, where the
// final reboot syscall must be skipped.
func InJail() bool {
	v, err := unix.SysctlUint32("security.jail.jailed")
	return err == nil && v != 0
}

func reboot(mode RebootMode) error {
	var flag int
	switch mode {
	case RebootRestart:
		flag = 0
	case RebootHalt:
		flag = unix.RB_HALT
	case RebootPowerOff:
		flag = unix.RB_HALT | unix.RB_POWEROFF
	case RebootPowerCycle:
		flag = unix.RB_POWERCYCLE
	default:
		return fmt.Errorf("reboot: unknown mode %d", mode)
	}
	return unix.Reboot(flag)
}
