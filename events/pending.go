// Package events turns raw signal and FIFO-command delivery into the
// sticky flag set the arbiter loop reads each iteration. The only call
// here that blocks is Intake.Pump, in the event-queue wait; what it does
// with each delivered signal or FIFO byte is only ever to set a flag,
// matching the "handlers only touch flags" discipline a PID 1 process
// must keep.
package events

import "sync/atomic"

// Pending is the live set of sticky event flags, one per platform.EventKind
// that Intake can raise. Every field is written by Intake (Store) and
// cleared by the arbiter loop (CompareAndSwap/Store) once it has acted on
// it; nothing else touches these fields, so plain atomic.Bool is
// enough, with no mutex and no channel.
type Pending struct {
	Sysinit    atomic.Bool
	Normal     atomic.Bool
	Rescue     atomic.Bool
	Emergency  atomic.Bool
	Halt       atomic.Bool
	Poweroff   atomic.Bool
	Powercycle atomic.Bool
	Reboot     atomic.Bool

	FastHalt       atomic.Bool
	FastPoweroff   atomic.Bool
	FastPowercycle atomic.Bool
	FastReboot     atomic.Bool

	Power     atomic.Bool
	KBRequest atomic.Bool
	SAK       atomic.Bool

	RestartLoggerKeepCWD   atomic.Bool
	RestartLoggerResetCWD  atomic.Bool
	RestartLoggerCycleDirs atomic.Bool

	Child atomic.Bool
	Init  atomic.Bool

	// Unknown is raised for any signal or FIFO byte the dialect does not
	// recognise; the arbiter logs it once per loop iteration and clears
	// it without taking any other action.
	Unknown atomic.Bool
}

// New returns a zero-valued Pending, every flag clear.
func New() *Pending {
	return &Pending{}
}

// Set stores true into the flag named by kind.
func (p *Pending) Set(kind EventKind) {
	if f := p.field(kind); f != nil {
		f.Store(true)
	}
}

// TestAndClear reports and clears the flag named by kind in one step, so the
// arbiter never acts on the same edge twice.
func (p *Pending) TestAndClear(kind EventKind) bool {
	if f := p.field(kind); f != nil {
		return f.CompareAndSwap(true, false)
	}
	return false
}

// Any reports whether any flag is currently set, checking every kind in
// AllKinds.
func (p *Pending) Any() bool {
	for _, k := range AllKinds {
		if f := p.field(k); f != nil && f.Load() {
			return true
		}
	}
	return false
}

func (p *Pending) field(kind EventKind) *atomic.Bool {
	switch kind {
	case Sysinit:
		return &p.Sysinit
	case Normal:
		return &p.Normal
	case Rescue:
		return &p.Rescue
	case Emergency:
		return &p.Emergency
	case Halt:
		return &p.Halt
	case Poweroff:
		return &p.Poweroff
	case Powercycle:
		return &p.Powercycle
	case Reboot:
		return &p.Reboot
	case FastHalt:
		return &p.FastHalt
	case FastPoweroff:
		return &p.FastPoweroff
	case FastPowercycle:
		return &p.FastPowercycle
	case FastReboot:
		return &p.FastReboot
	case Power:
		return &p.Power
	case KBRequest:
		return &p.KBRequest
	case SAK:
		return &p.SAK
	case RestartLoggerKeepCWD:
		return &p.RestartLoggerKeepCWD
	case RestartLoggerResetCWD:
		return &p.RestartLoggerResetCWD
	case RestartLoggerCycleDirs:
		return &p.RestartLoggerCycleDirs
	case Child:
		return &p.Child
	case Init:
		return &p.Init
	case Unknown:
		return &p.Unknown
	default:
		return nil
	}
}

// AllKinds lists every flag kind Pending tracks, in the order Any scans
// them.
var AllKinds = []EventKind{
	Sysinit, Normal, Rescue, Emergency, Halt, Poweroff, Powercycle, Reboot,
	FastHalt, FastPoweroff, FastPowercycle, FastReboot,
	Power, KBRequest, SAK,
	RestartLoggerKeepCWD, RestartLoggerResetCWD, RestartLoggerCycleDirs,
	Child, Init, Unknown,
}
