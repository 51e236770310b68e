package logpipe

import (
	"fmt"
	"os"

	"rootsv/config"
	"rootsv/platform"
	"rootsv/spawn"
)

// CyclogArgv is the fixed cyclog argument vector: a 256 KiB per-file
// cap, a 1 MiB total cap, rotating the current directory. It is
// prefixed with the external move-to-control-group chain loader, which
// moves the child into the logger slice before exec'ing cyclog proper.
var CyclogArgv = []string{
	"move-to-control-group", "../" + config.LoggerSliceName,
	"cyclog", "--max-file-size", "262144", "--max-total-size", "1048576", ".",
}

// SpawnCyclog forks and execs cyclog: cwd is the first candidate from
// config.LogDirectories that Start accepts (a chdir failure surfaces as
// a Start error, so the next candidate is tried), session leader,
// signals at default, stdin the log pipe's read end, stdout/stderr the
// saved-stdio copies, the listening socket closed (never passed via
// ExtraFiles, so Go's close-on-exec default handles this with no extra
// step).
//
// keepDir, when non-empty, implements the keep-cwd logger restart: it
// is tried as the sole candidate directory instead of re-deriving one
// from config.LogDirectories, so "respawn in same dir" literally reuses
// whatever directory the prior cyclog instance ran in rather than
// re-running priority resolution (which could, in principle, pick a
// different directory than last time). The directory actually used is
// returned so the caller can record it for a future keep-cwd request.
func SpawnCyclog(mode platform.Mode, tryAll bool, keepDir string, p *Pipe, savedStdout, savedStderr *os.File, env []string) (*spawn.Handle, string, error) {
	dirs := candidateDirs(mode, tryAll, keepDir)
	var lastErr error
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			lastErr = err
			continue
		}
		h, err := spawn.Start(spawn.Spec{
			Argv:   CyclogArgv,
			Env:    env,
			Dir:    dir,
			Stdin:  p.ReadFile(),
			Stdout: savedStdout,
			Stderr: savedStderr,
			Setsid: true,
		})
		if err == nil {
			return h, dir, nil
		}
		lastErr = err
	}
	return nil, "", fmt.Errorf("logpipe: no usable log directory out of %v: %w", dirs, lastErr)
}

// candidateDirs resolves which directories a spawn attempt should try,
// in order. A non-empty keepDir (restart_logger_keep_cwd) takes the
// whole decision over: the prior directory is the sole candidate, never
// re-derived from config.LogDirectories even if tryAll is also set.
func candidateDirs(mode platform.Mode, tryAll bool, keepDir string) []string {
	if keepDir != "" {
		return []string{keepDir}
	}
	return config.LogDirectories(mode, tryAll)
}
