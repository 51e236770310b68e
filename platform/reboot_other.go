//go:build !linux && !freebsd

package platform

import "fmt"

func reboot(mode RebootMode) error {
	return fmt.Errorf("reboot: unsupported platform")
}

// InJail is false on platforms with no container/jail detection wired
// up; reboot on those platforms fails anyway.
func InJail() bool { return false }
