//go:build freebsd

package platform

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

type freebsdClock struct{}

// NewClock constructs the production Clock for this platform.
func NewClock() Clock { return freebsdClock{} }

// HardwareClockIsLocal consults the machdep.wall_cmos_clock sysctl
// first (the kernel's own authoritative answer once set), falling back
// to the presence of /etc/wall_cmos_clock, the marker file rc(8) writes
// when the administrator has configured a local-time RTC.
func (freebsdClock) HardwareClockIsLocal() (bool, error) {
	v, err := unix.SysctlUint32("machdep.wall_cmos_clock")
	if err == nil {
		return v != 0, nil
	}
	if _, statErr := os.Stat("/etc/wall_cmos_clock"); statErr == nil {
		return true, nil
	}
	return false, nil
}

func (freebsdClock) Align(now time.Time) error {
	tv := unix.NsecToTimeval(now.UnixNano())
	return unix.Settimeofday(&tv)
}
