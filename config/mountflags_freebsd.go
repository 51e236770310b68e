//go:build freebsd

package config

// FreeBSD's nmount(2) takes named string/iovec options rather than a
// single flag bitmask for filesystem-specific behaviour, so these carry
// only the generic MNT_* flags, and none are set. platform.Mounter passes
// no filesystem-specific options on this OS either, so no
// "nosuid"/"noexec" style restriction is applied.
const (
	mountFlagsProc   uintptr = 0
	mountFlagsSys    uintptr = 0
	mountFlagsDev    uintptr = 0
	mountFlagsShm    uintptr = 0
	mountFlagsDevPts uintptr = 0
	mountFlagsRun    uintptr = 0
	mountFlagsCgroup uintptr = 0
)
