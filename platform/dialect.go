package platform

import "syscall"

// Dialect maps signal numbers and FIFO command bytes to PendingEvents
// flags. Two concrete dialects exist, system (RootMode == SystemRoot)
// and user (RootMode == UserSessionRoot), selected by NewDialect.
type Dialect interface {
	// Signal maps a received signal to an EventKind. ok is false if the
	// signal is not recognised by this dialect (caller sets Unknown).
	Signal(sig syscall.Signal) (kind EventKind, ok bool)
	// FIFOByte maps a single FIFO command byte to an EventKind. ok is
	// false if the byte is not recognised by this dialect.
	FIFOByte(b byte) (kind EventKind, ok bool)
}

// NewDialect returns the signal/FIFO dialect for mode.
func NewDialect(mode Mode) Dialect {
	if mode == SystemRoot {
		return systemDialect{}
	}
	return userDialect{}
}

// fifoTable is the ASCII command-byte vocabulary shared by both dialects;
// the user dialect overrides a subset of entries (machine-level verbs
// fold to halt/fasthalt/unknown).
var fifoTable = map[byte]EventKind{
	'R': FastReboot,
	'r': Reboot,
	'H': FastHalt,
	'h': Halt,
	'C': FastPowercycle,
	'c': Powercycle,
	'P': FastPoweroff,
	'p': Poweroff,
	'S': Sysinit,
	's': Rescue,
	'b': Emergency,
	'n': Normal,
	'L': RestartLoggerCycleDirs,
	'l': RestartLoggerKeepCWD,
}

type systemDialect struct{}

func (systemDialect) FIFOByte(b byte) (EventKind, bool) {
	kind, ok := fifoTable[b]
	return kind, ok
}

type userDialect struct{}

// userFIFOOverrides folds machine-level verbs into user-session-safe
// equivalents: a per-user root must not request machine reboots, so
// every fast machine verb collapses to fasthalt, every graceful one to
// halt, and the rescue/emergency verbs (meaningless for a session) to
// unknown. 'S' and 'n' are deliberately absent; sysinit and normal
// apply to a session root unchanged.
var userFIFOOverrides = map[byte]EventKind{
	'R': FastHalt,
	'H': FastHalt,
	'C': FastHalt,
	'P': FastHalt,
	'r': Halt,
	'c': Halt,
	'p': Halt,
	's': Unknown,
	'b': Unknown,
}

func (userDialect) FIFOByte(b byte) (EventKind, bool) {
	if kind, ok := userFIFOOverrides[b]; ok {
		return kind, kind != Unknown
	}
	kind, ok := fifoTable[b]
	return kind, ok
}
