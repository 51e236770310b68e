package arbiter

import (
	"syscall"

	"rootsv/events"
	"rootsv/logpipe"
	"rootsv/registry"
	"rootsv/rootsverr"
)

// dispatchLoggerRestart implements logger-restart coalescing and
// the unconditional respawn-while-absent rule cyclog shares with the
// service manager. Only one of the three restart flags is honoured per
// iteration; cycle_dirs wins over reset_cwd over keep_cwd when more than
// one was raised since the last time this ran (the most thorough
// recovery takes priority; see DESIGN.md). The three actions differ in
// which directory the next cyclog runs in: keep_cwd reuses a.loggerDir
// (the directory the prior instance actually ran in) verbatim,
// reset_cwd re-derives the top-priority candidate fresh, and cycle_dirs
// widens the search to every candidate.
func (a *Arbiter) dispatchLoggerRestart() bool {
	keep := a.cfg.Pending.TestAndClear(events.RestartLoggerKeepCWD)
	reset := a.cfg.Pending.TestAndClear(events.RestartLoggerResetCWD)
	cycle := a.cfg.Pending.TestAndClear(events.RestartLoggerCycleDirs)

	if keep || reset || cycle {
		switch {
		case cycle:
			a.loggerTryAllDirs = true
			a.loggerKeepDir = false
		case reset:
			a.loggerTryAllDirs = false
			a.loggerKeepDir = false
		case keep:
			a.loggerKeepDir = true
		}
		if slot := a.cfg.Registry.Get(registry.Cyclog); slot.Present() {
			a.cfg.Log.Debug("terminating cyclog", "pid", slot.PID())
			_ = syscall.Kill(slot.PID(), syscall.SIGTERM)
			return false
		}
	}

	if a.cfg.Registry.Get(registry.Cyclog).Present() {
		return false
	}
	// While stopping, cyclog is still respawned as long as the service
	// manager lives: its output has to keep draining through the pipe.
	// Only once the service manager is gone too does the logger stay
	// down (drainLogPipe then closes the pipe so the last one can exit).
	if a.stopping && !a.cfg.Registry.Get(registry.ServiceManager).Present() {
		return false
	}

	keepDir := ""
	if a.loggerKeepDir {
		keepDir = a.loggerDir
	}

	h, dir, err := logpipe.SpawnCyclog(a.cfg.Mode, a.loggerTryAllDirs, keepDir, a.cfg.Pipe, a.cfg.Saved[1], a.cfg.Saved[2], a.cfg.Env)
	if err != nil {
		werr := rootsverr.WrapWithSlot(err, rootsverr.ErrSpawn, "spawn cyclog", registry.Cyclog.String())
		a.cfg.Log.Warn("spawn cyclog", "error", werr)
		return false
	}
	if err := a.cfg.Registry.Occupy(registry.Cyclog, h.PID); err != nil {
		a.cfg.Log.Warn("occupy slot", "slot", registry.Cyclog.String(), "error", err)
		return false
	}
	a.cfg.Log.Info("spawned", "slot", registry.Cyclog.String(), "pid", h.PID, "dir", dir, "try_all_dirs", a.loggerTryAllDirs)
	a.loggerDir = dir
	a.loggerTryAllDirs = false
	a.loggerKeepDir = false
	return true
}
