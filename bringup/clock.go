package bringup

import (
	"log/slog"
	"time"

	"rootsv/platform"
	"rootsv/rootsverr"
)

// alignClock determines whether the RTC runs in UTC or local time and,
// for a local-time RTC, calls Clock.Align with the current time; Align
// applies no local/UTC offset (see platform.Clock). On platforms with no RTC dialect wired up (see
// platform.Clock), HardwareClockIsLocal returns ErrRTCUnsupported,
// logged and skipped rather than treated as an error.
func alignClock(clock platform.Clock, log *slog.Logger) {
	isLocal, err := clock.HardwareClockIsLocal()
	if err != nil {
		if rootsverr.IsKind(err, rootsverr.ErrClock) {
			log.Info("rtc alignment unsupported on this platform")
			return
		}
		logErr(log, "read rtc mode", rootsverr.ErrClock, err)
		return
	}

	if !isLocal {
		// RTC already in UTC; the kernel's own boot-time read needs no
		// correction.
		return
	}

	if err := clock.Align(time.Now()); err != nil {
		logErr(log, "align clock to local-time rtc", rootsverr.ErrClock, err)
	}
}
