package arbiter

import (
	"time"

	"rootsv/config"
	"rootsv/events"
	"rootsv/platform"
	"rootsv/registry"
	"rootsv/rootsverr"
	"rootsv/spawn"
)

// systemControlAlarms gives each of the three priority slots its own
// wall-clock deadline: emergency and kbreq children are expected
// to be quick, the two regular-slot uses get longer budgets since they
// may run arbitrary rc-style shutdown/startup scripts.
const (
	emergencyAlarm = 60 * time.Second
	kbreqAlarm     = 60 * time.Second
	regularAlarm   = 480 * time.Second
	initAlarm      = 420 * time.Second
)

// systemControlAction is one (pending flag, system-control invocation)
// pairing: the subcommand is "activate" for the emergency/kbreq events
// and "start" for the regular runlevel-style verbs, with the event's
// own name as the trailing option.
type systemControlAction struct {
	kind       events.EventKind
	subcommand string
	option     string
}

// systemControlCandidate pairs a slot with the ordered list of actions
// it may consume this iteration and the alarm to arm once spawned.
type systemControlCandidate struct {
	slot    registry.SlotName
	actions []systemControlAction
	alarm   time.Duration
}

// dispatchSystemControl implements the slot priority order: emergency,
// then kbreq, then regular (verb flags), then regular again for the
// init one-shot. It spawns at most one child; the first candidate
// whose slot is free and that has a pending flag to consume.
func (a *Arbiter) dispatchSystemControl() bool {
	candidates := []systemControlCandidate{
		{registry.EmergencySystemControl, []systemControlAction{
			{events.Emergency, "activate", "emergency"},
		}, emergencyAlarm},
		{registry.KBReqSystemControl, []systemControlAction{
			{events.Power, "activate", "powerfail"},
			{events.KBRequest, "activate", "kbrequest"},
			{events.SAK, "activate", "secure-attention-key"},
		}, kbreqAlarm},
		{registry.RegularSystemControl, []systemControlAction{
			{events.Sysinit, "start", "sysinit"},
			{events.Normal, "start", "normal"},
			{events.Rescue, "start", "rescue"},
			{events.Halt, "start", "halt"},
			{events.Poweroff, "start", "poweroff"},
			{events.Powercycle, "start", "powercycle"},
			{events.Reboot, "start", "reboot"},
		}, regularAlarm},
	}

	for _, c := range candidates {
		if a.cfg.Registry.Get(c.slot).Present() {
			continue
		}
		for _, act := range c.actions {
			if !a.cfg.Pending.TestAndClear(act.kind) {
				continue
			}
			a.spawnSystemControl(c.slot, act.subcommand, act.option, nil, c.alarm)
			return true
		}
	}

	// Priority 4: the init one-shot, same slot as priority 3 but only
	// once every verb flag above has been tried and the slot is free.
	// It carries the root's own argv instead of --verbose and an option.
	if !a.cfg.Registry.Get(registry.RegularSystemControl).Present() && a.cfg.Pending.TestAndClear(events.Init) {
		a.spawnSystemControl(registry.RegularSystemControl, "init", "", a.cfg.RootArgv, initAlarm)
		return true
	}

	return false
}

// buildSystemControlArgv renders the fixed argument vector:
// move-to-control-group, the system-control slice, the subcommand,
// --verbose (for everything but init), --user for UserSessionRoot, the
// option, and whatever extra arguments the caller supplies (the root's
// own argv, for "init").
func buildSystemControlArgv(mode platform.Mode, subcommand, option string, extra []string) []string {
	argv := []string{
		"move-to-control-group", "../" + config.SystemControlSliceName,
		"system-control", subcommand,
	}
	if subcommand != "init" {
		argv = append(argv, "--verbose")
	}
	if mode == platform.UserSessionRoot {
		argv = append(argv, "--user")
	}
	if option != "" {
		argv = append(argv, option)
	}
	argv = append(argv, extra...)
	return argv
}

func (a *Arbiter) spawnSystemControl(slot registry.SlotName, subcommand, option string, extra []string, alarm time.Duration) {
	argv := buildSystemControlArgv(a.cfg.Mode, subcommand, option, extra)
	h, err := a.cfg.Spawn(spawn.Spec{
		Argv:   argv,
		Env:    a.cfg.Env,
		Stdin:  a.cfg.Saved[0],
		Stdout: a.cfg.Saved[1],
		Stderr: a.cfg.Saved[2],
		Setsid: true,
	})
	if err != nil {
		werr := rootsverr.WrapWithSlot(err, rootsverr.ErrSpawn, "spawn system-control", slot.String())
		a.cfg.Log.Warn("spawn system-control", "subcommand", subcommand, "option", option, "error", werr)
		return
	}
	if err := a.cfg.Registry.Occupy(slot, h.PID); err != nil {
		a.cfg.Log.Warn("occupy slot", "slot", slot.String(), "error", err)
		return
	}
	a.cfg.Log.Info("spawned", "slot", slot.String(), "subcommand", subcommand, "option", option, "pid", h.PID)
	a.alarms[slot] = spawn.AlarmAfter(h.PID, alarm)
}
