//go:build freebsd

package platform

import "fmt"

// freebsdCGroup is a stub: FreeBSD has no cgroup filesystem, and
// bring-up only calls into CGroup when config.CGroupLevel reports
// something other than CGroupNone, which FreeBSD never does. This
// exists so the platform package still compiles on FreeBSD and so a
// caller that reaches it anyway gets a clear error instead of a
// silent no-op.
type freebsdCGroup struct{}

// NewCGroup constructs the production CGroup for this platform.
func NewCGroup() CGroup { return freebsdCGroup{} }

func (freebsdCGroup) MoveSelf(slice string) error {
	return fmt.Errorf("cgroups: not supported on this platform")
}

func (freebsdCGroup) EnableControllers(slice string, controllers []string) error {
	return fmt.Errorf("cgroups: not supported on this platform")
}

func (freebsdCGroup) CurrentPath() (string, error) {
	return "", fmt.Errorf("cgroups: not supported on this platform")
}
