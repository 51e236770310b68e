package bringup

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rootsv/config"
	"rootsv/rootsverr"
)

// baseEnvironment seeds the environment every child will inherit: set
// LANG/PATH to compiled-in defaults, absorb every envdir-style
// directory in reverse-priority order, then overlay the first readable
// shell-style env file. UserSessionRoot replaces this step with
// "become a subreaper" entirely (handled separately in the reaper_*.go
// files), so Run only calls this for SystemRoot.
func baseEnvironment(log *slog.Logger) {
	os.Setenv("LANG", config.DefaultLang)
	os.Setenv("PATH", config.DefaultPath)

	for _, dir := range config.EnvDirs {
		absorbEnvDir(dir, log)
	}

	for _, file := range config.EnvFiles {
		if absorbEnvFile(file, log) {
			break
		}
	}
}

// absorbEnvDir implements envdir(8) semantics: one regular file per
// variable, its first line (trailing newline stripped) is the value, an
// empty file unsets the variable.
func absorbEnvDir(dir string, log *slog.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Missing envdir is the common case (not every host declares
		// every priority level); not worth logging at all.
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			logErr(log, "absorb envdir entry", rootsverr.ErrInternal, err)
			continue
		}
		value := strings.TrimRight(string(data), "\n")
		if value == "" {
			os.Unsetenv(e.Name())
			continue
		}
		os.Setenv(e.Name(), value)
	}
}

// absorbEnvFile overlays a shell-style "KEY=value" env file (one
// assignment per line, '#' comments, blank lines ignored) on top of the
// current environment. It reports whether the file was readable at all,
// so the caller stops at the first one that exists.
func absorbEnvFile(path string, log *slog.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		v = strings.Trim(v, `"'`)
		os.Setenv(strings.TrimSpace(k), v)
	}
	return true
}
