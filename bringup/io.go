package bringup

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"rootsv/platform"
	"rootsv/rootsverr"
)

// lastResortIO opens /dev/null (and, for SystemRoot, /dev/console
// too); if the original stdin/stdout/stderr were already closed at
// program start, it populates SavedStdio from these fallbacks so
// shutdown always has somewhere to write its final messages. Whether
// the fallback is backed by a real terminal is checked with
// term.IsTerminal, deciding only whether console output is worth
// anything more than /dev/null.
func lastResortIO(mode platform.Mode, log *slog.Logger) (SavedStdio, error) {
	var saved SavedStdio

	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return saved, err
	}

	var console *os.File
	if mode == platform.SystemRoot {
		console, err = os.OpenFile("/dev/console", os.O_RDWR, 0)
		if err != nil {
			logErr(log, "open /dev/console", rootsverr.ErrResource, err)
			console = nil
		}
	}

	fallback := null
	if console != nil {
		fallback = console
	}

	for fd := 0; fd < 3; fd++ {
		if isOpenFD(fd) {
			saved[fd] = os.NewFile(uintptr(mustDup(fd)), "saved-stdio")
			continue
		}
		saved[fd] = fallback
	}

	if term.IsTerminal(int(fallback.Fd())) {
		log.Debug("last-resort io backed by a real terminal", "fd", fallback.Fd())
	}

	return saved, nil
}

func isOpenFD(fd int) bool {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	return err == nil
}

func mustDup(fd int) int {
	newFD, err := unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return fd
	}
	return newFD
}
