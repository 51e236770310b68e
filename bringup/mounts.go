package bringup

import (
	"bufio"
	"log/slog"
	"os"
	"strings"

	"rootsv/config"
	"rootsv/platform"
	"rootsv/rootsverr"
)

// detectCGroupLevel reads /proc/filesystems to determine whether cgroup
// v1, v2, or neither is compiled into the running kernel.
func detectCGroupLevel(log *slog.Logger) config.CGroupLevel {
	f, err := os.Open("/proc/filesystems")
	if err != nil {
		logErr(log, "read /proc/filesystems", rootsverr.ErrMount, err)
		return config.CGroupNone
	}
	defer f.Close()

	haveV1, haveV2 := false, false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		name := fields[len(fields)-1]
		switch name {
		case "cgroup":
			haveV1 = true
		case "cgroup2":
			haveV2 = true
		}
	}

	switch {
	case haveV2:
		return config.CGroupV2
	case haveV1:
		return config.CGroupV1
	default:
		return config.CGroupNone
	}
}

// applyAPIMounts walks the base API-filesystem collection plus the
// cgroup-level-specific one: for each declared mount, ensure the target
// exists (0700), skip it if already mounted, and otherwise mount it.
// EBUSY and every other mount failure are logged, never fatal.
func applyAPIMounts(level config.CGroupLevel, mounter platform.Mounter, log *slog.Logger) {
	mounts := append(config.BaseAPIMounts(), config.CGroupMounts(level)...)
	for _, m := range mounts {
		applyOneMount(m, mounter, log)
	}
}

func applyOneMount(m config.APIMount, mounter platform.Mounter, log *slog.Logger) {
	if err := os.MkdirAll(m.Target, 0700); err != nil {
		logErrDetail(log, "mkdir mount target", rootsverr.ErrMount, m.Target, err)
		return
	}

	if mounted, err := mounter.IsMounted(m.Target); err == nil && mounted {
		return
	}

	if err := mounter.Mount(m.Source, m.Type, m.Target, m.Flags, m.Options); err != nil {
		// EBUSY ("already mounted", the common steady-state case) and
		// any other mount failure are both recoverable; logged, never
		// fatal.
		log.Info("mount", "target", m.Target, "type", m.Type, "error", err)
	}
}

// applySymlinks creates the declared API compatibility symlinks,
// removing a pre-existing target first only when Force is set.
func applySymlinks(log *slog.Logger) {
	for _, s := range config.Symlinks {
		if s.Force {
			_ = os.Remove(s.Path)
		}
		if err := os.Symlink(s.Target, s.Path); err != nil && !os.IsExist(err) {
			logErrDetail(log, "symlink", rootsverr.ErrMount, s.Path, err)
		}
	}
}

// createRunDirectories creates the fixed /run/system-manager tree for
// SystemRoot, or the per-user $XDG_RUNTIME_DIR tree for
// UserSessionRoot.
func createRunDirectories(mode platform.Mode, log *slog.Logger) error {
	if mode == platform.SystemRoot {
		for _, dir := range config.RunDirectories {
			if err := os.MkdirAll(dir, 0755); err != nil {
				logErrDetail(log, "mkdir", rootsverr.ErrResource, dir, err)
			}
		}
		return nil
	}

	root := os.Getenv("XDG_RUNTIME_DIR")
	if root == "" {
		log.Warn("run directories", "error", "XDG_RUNTIME_DIR is unset")
		return nil
	}
	for _, rel := range config.UserRunDirectories {
		if err := os.MkdirAll(root+"/"+rel, 0755); err != nil {
			logErrDetail(log, "mkdir", rootsverr.ErrResource, rel, err)
		}
	}
	return nil
}
