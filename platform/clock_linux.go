//go:build linux

package platform

import (
	"bufio"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

type linuxClock struct{}

// NewClock constructs the production Clock for this platform.
func NewClock() Clock { return linuxClock{} }

// HardwareClockIsLocal reads the third line of /etc/adjtime, the file
// hwclock(8) writes; it is "UTC", "LOCAL", or absent (treated as UTC,
// matching hwclock's own default).
func (linuxClock) HardwareClockIsLocal() (bool, error) {
	f, err := os.Open("/etc/adjtime")
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) < 3 {
		return false, nil
	}
	return strings.TrimSpace(lines[2]) == "LOCAL", nil
}

// Align sets the system clock to now via settimeofday(2). No timezone
// is passed and no local-time offset is undone: the kernel's timezone
// setting and its boot-time reading of the RTC are left as they are.
func (linuxClock) Align(now time.Time) error {
	tv := unix.NsecToTimeval(now.UnixNano())
	return unix.Settimeofday(&tv)
}
