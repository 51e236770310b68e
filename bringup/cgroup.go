package bringup

import (
	"log/slog"
	"path/filepath"

	"rootsv/config"
	"rootsv/platform"
	"rootsv/rootsverr"
)

// moveIntoCGroupRoot locates the cgroup the process currently belongs
// to, moves self into a me.slice child of it, and delegates
// `+cpu +memory +io +pids` on both that slice and the service-manager
// slice so their descendants can further subdivide those controllers.
// Writing the same controllers twice is a no-op after the first
// success; EnableControllers just rewrites the same file.
func moveIntoCGroupRoot(level config.CGroupLevel, cgroup platform.CGroup, log *slog.Logger) {
	if level != config.CGroupV2 {
		// Delegation via subtree_control is a cgroup v2 concept; v1's
		// per-controller hierarchies have no equivalent single knob and
		// are organized entirely by the mount layout already applied.
		return
	}

	current, err := cgroup.CurrentPath()
	if err != nil {
		logErr(log, "read current cgroup", rootsverr.ErrCGroup, err)
		current = "/"
	}

	rootSlice := filepath.Join(current, config.RootSliceName)
	if err := cgroup.MoveSelf(rootSlice); err != nil {
		logErr(log, "move self into "+rootSlice, rootsverr.ErrCGroup, err)
	}
	if err := cgroup.EnableControllers(rootSlice, config.CGroupControllers); err != nil {
		logErr(log, "enable controllers on "+rootSlice, rootsverr.ErrCGroup, err)
	}

	svcSlice := filepath.Join(current, config.ServiceManagerSliceName)
	if err := cgroup.EnableControllers(svcSlice, config.CGroupControllers); err != nil {
		logErr(log, "enable controllers on "+svcSlice, rootsverr.ErrCGroup, err)
	}
}
