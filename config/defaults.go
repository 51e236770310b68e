// Package config holds the compiled-in declarative data consulted during
// boot-time bring-up: default environment, API filesystem mounts, run
// directories, and control-group controller lists. None of it has
// behaviour of its own; bringup.Run walks these collections.
package config

import (
	"os"

	"rootsv/platform"
)

// DefaultLang is the LANG value set before any envdir/env-file absorption.
const DefaultLang = "C.UTF-8"

// DefaultPath is the PATH value set before any envdir/env-file absorption.
const DefaultPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

// EnvDirs lists envdir-style locale directories absorbed in
// reverse-priority order (the last directory in the list wins on
// conflicting names).
var EnvDirs = []string{
	"/etc/defaults/locale.d",
	"/etc/locale.d",
	"/usr/local/etc/locale.d",
}

// EnvFiles lists shell-style locale files tried in fallback order; the
// first readable one is overlaid on top of the envdir absorption.
var EnvFiles = []string{
	"/usr/local/etc/locale.conf",
	"/etc/locale.conf",
	"/etc/defaults/locale.conf",
	"/etc/default/locale",
	"/etc/sysconfig/i18n",
	"/etc/sysconfig/language",
	"/etc/sysconf/i18n",
}

// RunDirectories are the fixed /run/* directories created 0755 at
// bring-up for SystemRoot.
var RunDirectories = []string{
	"/run/system-manager",
	"/run/system-manager/log",
	"/run/service-bundles",
	"/run/service-bundles/early-supervise",
	"/run/service-manager",
	"/run/user",
}

// UserRunDirectories are the per-user equivalents created under
// $XDG_RUNTIME_DIR for UserSessionRoot. Each entry is relative to the
// runtime directory root.
var UserRunDirectories = []string{
	"service-manager",
	"service-manager/log",
	"service-bundles",
	"service-bundles/early-supervise",
}

// Symlink describes one API-compatibility symlink created at bring-up.
// A pre-existing Path is removed first only when Force is set.
type Symlink struct {
	Path   string
	Target string
	Force  bool
}

// Symlinks is the declared set of compatibility symlinks.
var Symlinks = []Symlink{
	{
		Path:   "/run/system-manager/early-supervise",
		Target: "../service-bundles/early-supervise",
		Force:  false,
	},
}

// CGroupControllers is written to cgroup.subtree_control (space-separated,
// each prefixed '+') on both the supervision root's own cgroup and the
// service-manager slice, to delegate resource accounting to descendants.
var CGroupControllers = []string{"cpu", "memory", "io", "pids"}

// RootSliceName is the cgroup child the supervision root moves itself
// into during bring-up step 8.
const RootSliceName = "me.slice"

// ServiceManagerSliceName is the cgroup child the service manager and its
// supervised services are delegated.
const ServiceManagerSliceName = "service-manager.slice"

// SystemControlSliceName is the cgroup child transient system-control
// children are moved into before exec.
const SystemControlSliceName = "system-control.slice"

// LoggerSliceName is the cgroup child cyclog is moved into before exec.
const LoggerSliceName = "logger.slice"

// ControlFIFOPath returns the command FIFO path for mode: the
// programmatic "telinit" surface a system-control-equivalent client
// writes single ASCII command bytes to.
func ControlFIFOPath(mode platform.Mode) string {
	if mode == platform.SystemRoot {
		return "/run/system-manager/control"
	}
	return runtimeDirOr(".") + "/control"
}

// ServiceManagerSocketPath returns the UCSPI listening socket path the
// supervision root binds before the first service-manager fork.
func ServiceManagerSocketPath(mode platform.Mode) string {
	if mode == platform.SystemRoot {
		return "/run/service-manager/socket"
	}
	return runtimeDirOr(".") + "/service-manager/socket"
}

// runtimeDirOr returns $XDG_RUNTIME_DIR, or fallback when it is unset.
func runtimeDirOr(fallback string) string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return fallback
}
