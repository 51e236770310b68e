//go:build linux

package config

import "golang.org/x/sys/unix"

// Mount flags for the base API-filesystem collection, Linux values.
const (
	mountFlagsProc   uintptr = unix.MS_NOSUID | unix.MS_NOEXEC | unix.MS_NODEV
	mountFlagsSys    uintptr = unix.MS_NOSUID | unix.MS_NOEXEC | unix.MS_NODEV
	mountFlagsDev    uintptr = unix.MS_NOSUID
	mountFlagsShm    uintptr = unix.MS_NOSUID | unix.MS_NODEV
	mountFlagsDevPts uintptr = unix.MS_NOSUID | unix.MS_NOEXEC
	mountFlagsRun    uintptr = unix.MS_NOSUID | unix.MS_NODEV
	mountFlagsCgroup uintptr = unix.MS_NOSUID | unix.MS_NOEXEC | unix.MS_NODEV
)
