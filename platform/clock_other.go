//go:build !linux && !freebsd

package platform

// NewClock constructs the Clock for this platform. NetBSD and other
// targets have no RTC dialect wired up here; bring-up logs
// errRTCUnsupported and continues rather than treating it as fatal.
func NewClock() Clock { return rtcUnsupported{} }
