package arbiter

import (
	"context"
	"testing"

	"rootsv/events"
	"rootsv/platform"
	"rootsv/registry"
	"rootsv/spawn"
)

func TestServiceManagerSIGTERMOnlyWhenNoSystemControlRunning(t *testing.T) {
	a, queue, pending := newTestArbiter(t, fakeSpawn(0, errSpawnRefused))
	a.cfg.Registry.Occupy(registry.ServiceManager, 1)
	a.cfg.Registry.Occupy(registry.RegularSystemControl, 2)
	pending.Set(events.FastReboot)
	queue.Inject(platform.Ready{})

	if _, err := a.Iterate(context.Background()); err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	// The service manager slot should still be tracked as present: we
	// can't observe the real kill(2) in this unit test, but the slot
	// bookkeeping must not have been touched by dispatchServiceManager
	// while a system-control child is in flight.
	if !a.cfg.Registry.Get(registry.ServiceManager).Present() {
		t.Fatal("service manager slot should remain tracked as present")
	}
}

func TestServiceManagerAbsentRespawnsEveryIterationUntilStopping(t *testing.T) {
	attempts := 0
	spawnFn := func(spawn.Spec) (*spawn.Handle, error) {
		attempts++
		return nil, errSpawnRefused
	}
	a, queue, _ := newTestArbiter(t, spawnFn)
	for i := 0; i < 3; i++ {
		queue.Inject(platform.Ready{})
		if _, err := a.Iterate(context.Background()); err != nil {
			t.Fatalf("Iterate %d: %v", i, err)
		}
	}
	if a.cfg.Registry.Get(registry.ServiceManager).Present() {
		t.Fatal("a refused spawn must leave the slot empty")
	}
	// No system-control flag is pending and cyclog does not go through
	// SpawnFunc, so every attempt is a service-manager spawn.
	if attempts != 3 {
		t.Fatalf("expected one service-manager spawn attempt per iteration (3), got %d", attempts)
	}
}
