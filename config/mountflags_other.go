//go:build !linux && !freebsd

package config

// Unsupported target platform for the bring-up mount collection; the
// supervision root's SystemRoot bring-up path is Linux/FreeBSD only
// (see platform.Mounter), but config must still compile so UserSessionRoot
// logic can be exercised in tests on other hosts.
const (
	mountFlagsProc   uintptr = 0
	mountFlagsSys    uintptr = 0
	mountFlagsDev    uintptr = 0
	mountFlagsShm    uintptr = 0
	mountFlagsDevPts uintptr = 0
	mountFlagsRun    uintptr = 0
	mountFlagsCgroup uintptr = 0
)
