package config

import (
	"os/user"

	"rootsv/platform"
)

// LogDirectories returns the priority-ordered list of candidate working
// directories for the cyclog child, consulted both at initial bring-up
// and on a restart_logger_cycle_dirs request. The common case (initial
// spawn, keep_cwd/reset_cwd restarts) offers only the volatile /run
// directory, which bring-up has just created; tryAll widens the search
// to the persistent /var candidates first, for the cycle-dirs restart
// issued once the real filesystems are mounted and writable.
func LogDirectories(mode platform.Mode, tryAll bool) []string {
	if mode == platform.SystemRoot {
		if tryAll {
			return []string{
				"/var/log/system-manager",
				"/var/system-manager/log",
				"/run/system-manager/log",
			}
		}
		return []string{"/run/system-manager/log"}
	}

	runDir := runtimeDirOr(".") + "/service-manager/log"
	if tryAll {
		if dir := userLogDir(); dir != "" {
			return []string{dir, runDir}
		}
	}
	return []string{runDir}
}

// userLogDir is the persistent per-user candidate, /var/log/user/<name>,
// offered only on a cycle-dirs restart. An unresolvable user yields ""
// so the caller falls through to the runtime directory.
func userLogDir() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return "/var/log/user/" + u.Username
}
