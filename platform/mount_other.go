//go:build !linux && !freebsd

package platform

import "fmt"

// otherMounter is the fallback used on platforms this supervision root
// does not natively target; every call fails rather than silently
// doing nothing, so bring-up surfaces the gap instead of proceeding
// into an unmounted /proc or /sys.
type otherMounter struct{}

// NewMounter constructs the production Mounter for this platform.
func NewMounter() Mounter { return otherMounter{} }

func (otherMounter) Mount(source, fstype, target string, flags uintptr, data string) error {
	return fmt.Errorf("mount: unsupported platform")
}

func (otherMounter) Unmount(target string, force bool) error {
	return fmt.Errorf("unmount: unsupported platform")
}

func (otherMounter) IsMounted(target string) (bool, error) {
	return false, fmt.Errorf("is mounted: unsupported platform")
}
