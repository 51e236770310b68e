package events

import "rootsv/platform"

// EventKind is an alias of platform.EventKind so callers that only deal
// in events never need to import platform directly for the flag names.
type EventKind = platform.EventKind

const (
	Sysinit                = platform.Sysinit
	Normal                 = platform.Normal
	Rescue                 = platform.Rescue
	Emergency              = platform.Emergency
	Halt                   = platform.Halt
	Poweroff               = platform.Poweroff
	Powercycle             = platform.Powercycle
	Reboot                 = platform.Reboot
	FastHalt               = platform.FastHalt
	FastPoweroff           = platform.FastPoweroff
	FastPowercycle         = platform.FastPowercycle
	FastReboot             = platform.FastReboot
	Power                  = platform.Power
	KBRequest              = platform.KBRequest
	SAK                    = platform.SAK
	RestartLoggerKeepCWD   = platform.RestartLoggerKeepCWD
	RestartLoggerResetCWD  = platform.RestartLoggerResetCWD
	RestartLoggerCycleDirs = platform.RestartLoggerCycleDirs
	Child                  = platform.Child
	Init                   = platform.Init
	Unknown                = platform.Unknown
)
