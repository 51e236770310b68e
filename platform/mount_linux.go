//go:build linux

package platform

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/unix"
)

type linuxMounter struct{}

// NewMounter constructs the production Mounter for this platform.
func NewMounter() Mounter { return linuxMounter{} }

func (linuxMounter) Mount(source, fstype, target string, flags uintptr, data string) error {
	return unix.Mount(source, target, fstype, uintptr(flags), data)
}

func (linuxMounter) Unmount(target string, force bool) error {
	var flags int
	if force {
		flags = unix.MNT_FORCE
	}
	return unix.Unmount(target, flags)
}

// IsMounted reports whether target is itself a mount point: first by the
// st_dev-differs-from-parent heuristic (cheap, no /proc dependency, and
// what a container or minimal early-boot environment can rely on even
// before /proc is mounted), then, when available, confirmed against
// /proc/self/mounts so a bind mount of a directory with the same device
// number is not missed.
func (linuxMounter) IsMounted(target string) (bool, error) {
	info, err := os.Stat(target)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", target, err)
	}

	parentInfo, err := os.Stat(filepath.Dir(target))
	if err == nil {
		statA, okA := info.Sys().(*syscall.Stat_t)
		statB, okB := parentInfo.Sys().(*syscall.Stat_t)
		if okA && okB {
			if statA.Dev != statB.Dev {
				return true, nil
			}
			// A freshly mounted filesystem's root directory is commonly
			// inode 1 or 2.
			if statA.Ino == 1 || statA.Ino == 2 {
				return true, nil
			}
		}
	}

	f, err := os.Open("/proc/self/mounts")
	if err != nil {
		// /proc not mounted yet (early boot); trust the stat heuristic.
		return false, nil
	}
	defer f.Close()

	clean := filepath.Clean(target)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) >= 2 && fields[1] == clean {
			return true, nil
		}
	}
	return false, nil
}

func splitFields(line string) []string {
	var fields []string
	start := -1
	for i, r := range line {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				fields = append(fields, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, line[start:])
	}
	return fields
}
