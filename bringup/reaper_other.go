//go:build !linux && !freebsd

package bringup

import "log/slog"

func disableCtrlAltDel(log *slog.Logger) {
	log.Info("disable ctrl-alt-del is unsupported on this platform")
}

func becomeSubreaper(log *slog.Logger) {
	log.Info("subreaper registration is unsupported on this platform")
}
