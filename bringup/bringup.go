// Package bringup implements the one-shot, idempotent boot-time actions
// that run before the first child spawn: session/cwd setup, base
// environment, API mounts, cgroup root placement, run directories,
// clock alignment, the reboot hotkey, and last-resort stdio. Every step
// is its own function so Run can skip the machine-level ones for
// UserSessionRoot and so each step can be exercised independently in
// tests.
//
// Errors from any step are logged and swallowed by Run: PID 1 must not
// exit, so a failed mount or unreadable clock file costs a log line,
// never the boot.
package bringup

import (
	"fmt"
	"log/slog"
	"os"

	"rootsv/config"
	"rootsv/logging"
	"rootsv/platform"
	"rootsv/rootsverr"
)

// SavedStdio holds the root's original 0/1/2 (or /dev/null and, for
// SystemRoot, /dev/console fallbacks when the originals were already
// closed), dup'd aside before the log pipe replaces stdout/stderr.
type SavedStdio [3]*os.File

// Result is everything Run produces that later stages need.
type Result struct {
	Saved SavedStdio
	// CGroupLevel is the detected cgroup hierarchy, CGroupNone for
	// UserSessionRoot or when neither v1 nor v2 is mounted.
	CGroupLevel config.CGroupLevel
}

// Deps bundles the platform capability surface Run needs, so tests can
// inject platform.FakeEventQueue-style doubles instead of hitting real
// syscalls.
type Deps struct {
	Mounter platform.Mounter
	CGroup  platform.CGroup
	Clock   platform.Clock
	Log     *slog.Logger
}

// Run executes every bring-up step once, in order, for the given mode.
// It never returns an error that should stop the caller: every per-step
// failure is logged via Deps.Log and execution continues, because PID 1
// must not exit. The returned error is non-nil only if a step is so
// fundamental (no stdio at all available) that there is nowhere left to
// even log the subsequent failures.
func Run(mode platform.Mode, argv []string, deps Deps) (*Result, error) {
	res := &Result{}

	sessionAndCWD(mode, deps.Log)

	if mode == platform.SystemRoot {
		baseEnvironment(deps.Log)
		level := detectCGroupLevel(deps.Log)
		res.CGroupLevel = level
		applyAPIMounts(level, deps.Mounter, deps.Log)
		applySymlinks(deps.Log)
	}

	if err := createRunDirectories(mode, deps.Log); err != nil {
		deps.Log.Warn("run directories", "error", err)
	}

	if mode == platform.SystemRoot {
		alignClock(deps.Clock, deps.Log)
		moveIntoCGroupRoot(res.CGroupLevel, deps.CGroup, deps.Log)
		disableCtrlAltDel(deps.Log)
	} else {
		becomeSubreaper(deps.Log)
	}

	saved, err := lastResortIO(mode, deps.Log)
	if err != nil {
		return nil, fmt.Errorf("bringup: last-resort io: %w", err)
	}
	res.Saved = saved

	return res, nil
}

// logErr is the one-line "logged, not fatal" pattern every bring-up
// step uses: the operation is attached to both the log record (via
// logging.WithOperation) and the wrapped error itself.
func logErr(log *slog.Logger, op string, kind rootsverr.ErrorKind, err error) {
	if err == nil {
		return
	}
	logging.WithOperation(log, op).Warn("bring-up step failed", "error", rootsverr.Wrap(err, kind, op))
}

// logErrDetail is logErr's cerrors.WrapWithDetail counterpart, for steps
// that need to identify which of several targets (a mount point, a run
// directory, a symlink path) failed without building that identity into
// the operation string itself.
func logErrDetail(log *slog.Logger, op string, kind rootsverr.ErrorKind, detail string, err error) {
	if err == nil {
		return
	}
	logging.WithOperation(log, op).Warn("bring-up step failed", "error", rootsverr.WrapWithDetail(err, kind, op, detail))
}
