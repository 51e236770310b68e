// Package arbiter implements the transition arbiter and event-loop
// skeleton. It turns whatever events.Pending reports into new child
// spawns (at most one per slot family per iteration), enforces slot
// exclusivity via registry.Registry, and drives the final
// reboot/halt/poweroff once both long-lived children are gone.
package arbiter

import (
	"context"
	"log/slog"

	"rootsv/bringup"
	"rootsv/events"
	"rootsv/logpipe"
	"rootsv/platform"
	"rootsv/registry"
	"rootsv/rootsverr"
	"rootsv/spawn"
	"rootsv/svcmgr"
)

// SpawnFunc matches spawn.Start's signature; tests inject a fake so
// arbiter behaviour (slot bookkeeping, priority order, stickiness) can
// be exercised without forking real processes. It covers the service
// manager and system-control spawns; cyclog is spawned through
// logpipe.SpawnCyclog, which calls spawn.Start itself.
type SpawnFunc func(spawn.Spec) (*spawn.Handle, error)

// Config bundles everything the Arbiter needs that does not change for
// the life of the process.
type Config struct {
	Mode     platform.Mode
	Intake   *events.Intake
	Pending  *events.Pending
	Registry *registry.Registry
	Pipe     *logpipe.Pipe
	Saved    bringup.SavedStdio
	Socket   *svcmgr.Socket
	Env      []string
	FIFOFD   int
	RootArgv []string
	Log      *slog.Logger
	Spawn    SpawnFunc
	Reboot   func(platform.RebootMode) error
}

// Arbiter owns the mutable state a running loop accumulates on top of
// Config: the sticky stop latch, in-flight alarm timers, and the
// coalesced logger-restart request.
type Arbiter struct {
	cfg Config

	stopping bool
	stopKind events.EventKind

	alarms map[registry.SlotName]func()

	loggerTryAllDirs bool
	loggerKeepDir    bool
	loggerDir        string

	pipeDrained bool
}

// New constructs an Arbiter ready to Run.
func New(cfg Config) *Arbiter {
	if cfg.Spawn == nil {
		cfg.Spawn = spawn.Start
	}
	if cfg.Reboot == nil {
		cfg.Reboot = platform.RebootSyscall
	}
	return &Arbiter{
		cfg:    cfg,
		alarms: make(map[registry.SlotName]func()),
	}
}

// Stopping reports whether any sticky stop-kind flag has ever been
// observed; once true, the arbiter never spawns a new service manager.
func (a *Arbiter) Stopping() bool { return a.stopping }

// Run drives the loop until a stop-kind flag has been processed and
// both long-lived children (service manager, cyclog) are gone, then
// performs the final shutdown. ctx cancellation stops the loop
// early without shutting down. UserSessionRoot ends through the same
// final shutdown, where shutdown.Finalize returns nil without rebooting.
func (a *Arbiter) Run(ctx context.Context) error {
	for {
		done, err := a.Iterate(ctx)
		if err != nil {
			return err
		}
		if done {
			return a.finalShutdown()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Iterate runs exactly one loop body, in the same order the loop has
// always run it: reap, dispatch, and only then block in the event-queue
// wait; the single suspension point, at the bottom of the loop.
// Running the dispatches before the first wait is what makes cold boot
// work: the init one-shot, cyclog, and the service manager must all be
// spawned before any external event has arrived. done reports whether
// the loop has reached its terminal condition (stopping and both
// long-lived slots empty), checked before the wait so a finished root
// never blocks for one more event.
func (a *Arbiter) Iterate(ctx context.Context) (done bool, err error) {
	a.reap()
	a.updateStopLatch()
	a.dispatchSystemControl()

	if a.stopping && !a.cfg.Registry.Get(registry.ServiceManager).Present() && !a.cfg.Registry.Get(registry.Cyclog).Present() {
		return true, nil
	}

	a.terminateServiceManager()
	a.dispatchLoggerRestart()
	a.drainLogPipe()
	a.dispatchServiceManager()
	a.logUnknown()

	if err := a.cfg.Intake.Pump(ctx, a.cfg.FIFOFD); err != nil {
		if a.cfg.Mode == platform.SystemRoot && ctx.Err() == nil {
			a.cfg.Log.Error("event queue wait failed, continuing", "error", err)
			return false, nil
		}
		return false, rootsverr.Wrap(err, rootsverr.ErrInternal, "event queue wait")
	}
	return false, nil
}

// logUnknown reports any unrecognised signal or FIFO byte received since
// the last iteration, once, and clears the flag.
func (a *Arbiter) logUnknown() {
	if a.cfg.Pending.TestAndClear(events.Unknown) {
		a.cfg.Log.Warn("unknown event ignored")
	}
}
