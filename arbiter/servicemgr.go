package arbiter

import (
	"os"
	"syscall"

	"rootsv/config"
	"rootsv/registry"
	"rootsv/rootsverr"
	"rootsv/spawn"
	"rootsv/svcmgr"
)

// serviceManagerArgv is the service manager's fixed argument vector:
// service-manager, prefixed by the external move-to-control-group chain
// loader, which performs the cgroup move before exec.
var serviceManagerArgv = []string{
	"move-to-control-group", "../" + config.ServiceManagerSliceName + "/me.slice",
	"service-manager",
}

// terminateServiceManager implements the stop half of the service
// manager's lifecycle: once a stop-kind flag has latched, signal the
// running instance to terminate as soon as no system-control child is
// in flight (so a graceful shutdown verb gets to finish its own
// housekeeping first).
func (a *Arbiter) terminateServiceManager() {
	slot := a.cfg.Registry.Get(registry.ServiceManager)
	if !slot.Present() || !a.stopping || a.systemControlRunning() {
		return
	}
	a.cfg.Log.Debug("terminating service manager", "pid", slot.PID())
	_ = syscall.Kill(slot.PID(), syscall.SIGTERM)
}

// dispatchServiceManager implements the respawn half: spawn on every
// iteration while the slot is empty, until a stop-kind flag latches.
func (a *Arbiter) dispatchServiceManager() bool {
	if a.cfg.Registry.Get(registry.ServiceManager).Present() {
		return false
	}

	if a.stopping {
		return false
	}

	devNull, err := os.OpenFile(os.DevNull, os.O_RDONLY, 0)
	if err != nil {
		a.cfg.Log.Warn("spawn service-manager", "error", err)
		return false
	}
	defer devNull.Close()

	spec := spawn.Spec{
		Argv:   serviceManagerArgv,
		Env:    svcmgr.SanitizeEnviron(a.cfg.Env),
		Stdin:  devNull,
		Stdout: a.cfg.Pipe.WriteFile(),
		Stderr: a.cfg.Pipe.WriteFile(),
		Setsid: true,
	}
	if a.cfg.Socket != nil {
		// ExtraFiles[0] becomes fd 3 in the child, which is exactly
		// svcmgr.ListenSocketFD; asserted once here rather than at
		// every call site.
		if svcmgr.ListenSocketFD != 3 {
			panic("svcmgr.ListenSocketFD must be 3 to line up with ExtraFiles[0]")
		}
		sockFile, err := a.cfg.Socket.File()
		if err != nil {
			a.cfg.Log.Warn("spawn service-manager", "error", err)
			return false
		}
		// The disposable dup is closed once the child holds its own
		// copy; the descriptor the Socket itself owns stays open for
		// the next respawn.
		defer sockFile.Close()
		spec.ExtraFiles = []*os.File{sockFile}
	}

	h, err := a.cfg.Spawn(spec)
	if err != nil {
		werr := rootsverr.WrapWithSlot(err, rootsverr.ErrSpawn, "spawn service-manager", registry.ServiceManager.String())
		a.cfg.Log.Warn("spawn service-manager", "error", werr)
		return false
	}
	if err := a.cfg.Registry.Occupy(registry.ServiceManager, h.PID); err != nil {
		a.cfg.Log.Warn("occupy slot", "slot", registry.ServiceManager.String(), "error", err)
		return false
	}
	a.cfg.Log.Info("spawned", "slot", registry.ServiceManager.String(), "pid", h.PID)
	return true
}

func (a *Arbiter) systemControlRunning() bool {
	for _, slot := range []registry.SlotName{
		registry.RegularSystemControl, registry.EmergencySystemControl, registry.KBReqSystemControl,
	} {
		if a.cfg.Registry.Get(slot).Present() {
			return true
		}
	}
	return false
}
