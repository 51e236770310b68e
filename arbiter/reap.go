package arbiter

import (
	"context"
	"time"

	"rootsv/events"
	"rootsv/platform"
	"rootsv/registry"
)

// cyclogThrottle is the fixed delay imposed after an unsuccessful
// cyclog exit, so a misconfigured or crash-looping logger does not spin
// the loop at full CPU.
const cyclogThrottle = 500 * time.Millisecond

// reap runs at the top of every iteration when the child flag is
// pending: it drains every immediately-reapable child, cancels any
// alarm timer armed for a slot that just vacated, and applies the
// cyclog respawn throttle when cyclog exited other than cleanly.
func (a *Arbiter) reap() {
	if !a.cfg.Pending.TestAndClear(events.Child) {
		return
	}
	reaped := registry.ReapAll(a.cfg.Registry, a.cfg.Log)
	for _, r := range reaped {
		if !r.Known {
			continue
		}
		if cancel, ok := a.alarms[r.Slot]; ok {
			cancel()
			delete(a.alarms, r.Slot)
		}
		if r.Slot == registry.Cyclog && !cleanExit(r) {
			a.throttleCyclogRespawn()
		}
	}
}

func cleanExit(r registry.Reaped) bool {
	return r.Status == registry.Exited && r.Code == 0
}

// throttleCyclogRespawn waits up to cyclogThrottle before the next
// spawn attempt. The wait is one deadline-bounded pump of the event
// queue rather than a plain sleep: any arriving signal or FIFO byte
// ends it immediately, so a stop request is never delayed behind a dead
// logger, and whatever arrived is already folded into the pending flags
// for the rest of this iteration to act on.
func (a *Arbiter) throttleCyclogRespawn() {
	ctx, cancel := context.WithTimeout(context.Background(), cyclogThrottle)
	defer cancel()
	_ = a.cfg.Intake.Pump(ctx, a.cfg.FIFOFD)
}

// updateStopLatch consumes every sticky stop-kind flag. The first one
// observed over the process's lifetime wins and latches a.stopping
// permanently; later ones are still drained, but do not change
// a.stopKind.
func (a *Arbiter) updateStopLatch() {
	for _, kind := range platform.StopKinds {
		if a.cfg.Pending.TestAndClear(kind) && !a.stopping {
			a.stopping = true
			a.stopKind = kind
		}
	}
}
