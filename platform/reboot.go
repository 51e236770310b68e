package platform

// RebootMode selects which final syscall the shutdown sequence issues
// once every child slot has drained, derived from the sticky stop kind
// that triggered it.
type RebootMode int

const (
	// RebootRestart reboots the kernel (ctrl-alt-del, Sysinit-driven
	// restart requests).
	RebootRestart RebootMode = iota
	// RebootHalt stops the system without power-cycling or powering
	// off, leaving it at "System halted."
	RebootHalt
	// RebootPowerOff powers the machine off where the firmware/hardware
	// supports it.
	RebootPowerOff
	// RebootPowerCycle powers the machine off and back on where the
	// host kernel exposes that (FreeBSD RB_POWERCYCLE); platforms
	// without it fall back to a plain restart.
	RebootPowerCycle
)

// RebootSyscall issues the final, unreturning syscall for mode. A
// successful call never returns; an error return means the syscall
// itself failed (e.g. insufficient privilege), which is the only case
// callers need to handle.
func RebootSyscall(mode RebootMode) error {
	return reboot(mode)
}
