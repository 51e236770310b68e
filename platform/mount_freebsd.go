//go:build freebsd

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"
)

type freebsdMounter struct{}

// NewMounter constructs the production Mounter for this platform.
func NewMounter() Mounter { return freebsdMounter{} }

// Mount uses nmount(2) with the fstype/fspath/from iovec triple every
// FreeBSD filesystem accepts; data is not passed to nmount(2), so
// filesystem-specific options (such as a tmpfs mode) are not applied.
func (freebsdMounter) Mount(source, fstype, target string, flags uintptr, data string) error {
	iov := buildIovec(map[string]string{
		"fstype": fstype,
		"fspath": target,
		"from":   source,
	})
	if err := unix.Nmount(iov, int(flags)); err != nil {
		return fmt.Errorf("nmount %s on %s: %w", fstype, target, err)
	}
	return nil
}

func (freebsdMounter) Unmount(target string, force bool) error {
	var flags int
	if force {
		flags = unix.MNT_FORCE
	}
	return unix.Unmount(target, flags)
}

// IsMounted reports whether target is itself a mount point: first by the
// st_dev-differs-from-parent heuristic, then confirmed against the
// kernel's own mount list via getfsstat(2).
func (freebsdMounter) IsMounted(target string) (bool, error) {
	info, err := os.Stat(target)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", target, err)
	}
	parentInfo, err := os.Stat(filepath.Dir(target))
	if err == nil {
		statA, okA := info.Sys().(*syscall.Stat_t)
		statB, okB := parentInfo.Sys().(*syscall.Stat_t)
		if okA && okB && statA.Dev != statB.Dev {
			return true, nil
		}
	}

	mounts, err := readMountTable()
	if err != nil {
		return false, nil
	}
	clean := filepath.Clean(target)
	for _, m := range mounts {
		if m == clean {
			return true, nil
		}
	}
	return false, nil
}

// readMountTable asks the kernel for its live mount list via
// getfsstat(2) rather than parsing /etc/fstab, which only describes
// configured mounts, not the ones actually active.
func readMountTable() ([]string, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil || n <= 0 {
		return nil, err
	}
	stats := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(stats, unix.MNT_NOWAIT)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, bytesToString(stats[i].Mntonname[:]))
	}
	return out, nil
}

func bytesToString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// buildIovec assembles the NUL-terminated key/value iovec array that
// nmount(2) requires, in the same shape as FreeBSD's own mount(8) helper.
func buildIovec(opts map[string]string) []unix.Iovec {
	iov := make([]unix.Iovec, 0, len(opts)*2)
	for k, v := range opts {
		iov = append(iov, stringIovec(k), stringIovec(v))
	}
	return iov
}

func stringIovec(s string) unix.Iovec {
	b := append([]byte(s), 0)
	return unix.Iovec{
		Base: &b[0],
		Len:  uint64(len(b)),
	}
}
