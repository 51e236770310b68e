package config

// APIMount describes one virtual filesystem mount consulted during
// bring-up step 3. Source/Type/Target/Flags/Options mirror the arguments
// to the host mount(2)/nmount(2) syscall. Which collection a mount
// belongs to (base API mounts vs. one of the cgroup layouts) is set by
// the list it is declared in, not by a field.
type APIMount struct {
	Source  string
	Type    string
	Target  string
	Flags   uintptr
	Options string
	// Force marks a mount whose pre-existing non-mount target (e.g. a
	// stale symlink) may be removed before mounting over it. bringup's
	// mount step does not read it: no target is removed before a mount.
	Force bool
}

// CGroupLevel identifies which cgroup hierarchy a host supports, detected
// by reading /proc/filesystems during bring-up step 4.
type CGroupLevel int

const (
	// CGroupNone means neither cgroup v1 nor v2 is available; cgroup
	// bring-up and delegation are both skipped.
	CGroupNone CGroupLevel = iota
	// CGroupV1 means the legacy multi-hierarchy cgroup filesystem is
	// available.
	CGroupV1
	// CGroupV2 means the unified cgroup filesystem is available.
	CGroupV2
)

// baseAPIMounts are mounted unconditionally for SystemRoot, before the
// cgroup-level-specific collection.
var baseAPIMounts = []APIMount{
	{Source: "proc", Type: "proc", Target: "/proc", Flags: mountFlagsProc},
	{Source: "sysfs", Type: "sysfs", Target: "/sys", Flags: mountFlagsSys},
	{Source: "devtmpfs", Type: "devtmpfs", Target: "/dev", Flags: mountFlagsDev},
	{Source: "tmpfs", Type: "tmpfs", Target: "/dev/shm", Flags: mountFlagsShm, Options: "mode=1777"},
	{Source: "devpts", Type: "devpts", Target: "/dev/pts", Flags: mountFlagsDevPts, Options: "gid=5,mode=620,ptmxmode=666"},
	{Source: "tmpfs", Type: "tmpfs", Target: "/run", Flags: mountFlagsRun, Options: "mode=755"},
}

// cgroupV2Mounts are mounted when CGroupLevel == CGroupV2.
var cgroupV2Mounts = []APIMount{
	{Source: "cgroup2", Type: "cgroup2", Target: "/sys/fs/cgroup", Flags: mountFlagsCgroup},
}

// cgroupV1Controllers lists the per-controller hierarchies mounted when
// CGroupLevel == CGroupV1; CGroupV1Mounts turns them into a tmpfs to
// hold the per-controller mountpoints, then one mount per controller.
var cgroupV1Controllers = []string{"cpu,cpuacct", "memory", "pids", "io,blkio", "devices", "freezer", "net_cls,net_prio"}

// CGroupV1Mounts builds the collection of per-controller mounts for
// cgroup v1, rooted at /sys/fs/cgroup.
func CGroupV1Mounts() []APIMount {
	mounts := make([]APIMount, 0, len(cgroupV1Controllers)+1)
	mounts = append(mounts, APIMount{
		Source: "tmpfs", Type: "tmpfs", Target: "/sys/fs/cgroup", Flags: mountFlagsCgroup, Options: "mode=755",
	})
	for _, controller := range cgroupV1Controllers {
		mounts = append(mounts, APIMount{
			Source: "cgroup", Type: "cgroup", Target: "/sys/fs/cgroup/" + controller, Flags: mountFlagsCgroup, Options: controller,
		})
	}
	return mounts
}

// BaseAPIMounts returns the always-applied API mount collection.
func BaseAPIMounts() []APIMount { return append([]APIMount(nil), baseAPIMounts...) }

// CGroupMounts returns the mount collection for the given detected
// cgroup level, or nil for CGroupNone.
func CGroupMounts(level CGroupLevel) []APIMount {
	switch level {
	case CGroupV2:
		return append([]APIMount(nil), cgroupV2Mounts...)
	case CGroupV1:
		return CGroupV1Mounts()
	default:
		return nil
	}
}
