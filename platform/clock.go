package platform

import (
	"time"

	"rootsv/rootsverr"
)

var errRTCUnsupported = rootsverr.ErrRTCUnsupported

// Clock answers the "is the hardware clock in UTC or local time" question
// bring-up step 7 needs before it can align the system clock, and applies
// that alignment. Implementations never assume UTC; they consult whatever
// the host records as ground truth for this (adjtime(5) on Linux,
// the wall_cmos_clock sysctl on FreeBSD).
type Clock interface {
	// HardwareClockIsLocal reports whether the RTC is believed to store
	// local time rather than UTC.
	HardwareClockIsLocal() (bool, error)
	// Align calls settimeofday(2) with now. It passes no timezone and
	// applies no local/UTC offset to the value.
	Align(now time.Time) error
}

// rtcUnsupported is the Clock for platforms (NetBSD in particular)
// where this supervision root has no RTC dialect wired up; bring-up
// logs the sentinel error and continues rather than treating it as
// fatal.
type rtcUnsupported struct{}

func (rtcUnsupported) HardwareClockIsLocal() (bool, error) {
	return false, errRTCUnsupported
}

func (rtcUnsupported) Align(time.Time) error {
	return errRTCUnsupported
}
