package platform

// CGroup performs the narrow slice of cgroup management bring-up needs:
// moving the running process into a slice of its own and turning on the
// controllers its descendants (the service manager, the logger,
// transient system-control children) will need delegated to them. This
// is not a general resource-limit API; this supervision root only ever
// organizes its own children into slices, it never enforces limits on
// service processes itself.
type CGroup interface {
	// MoveSelf writes the calling process's pid into slice's
	// cgroup.procs, creating slice if necessary.
	MoveSelf(slice string) error
	// EnableControllers turns on the named controllers in slice's
	// cgroup.subtree_control so children created under it can further
	// delegate them.
	EnableControllers(slice string, controllers []string) error
	// CurrentPath returns the cgroup path the calling process currently
	// belongs to, read from /proc/self/cgroup.
	CurrentPath() (string, error)
}
