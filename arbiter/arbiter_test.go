package arbiter

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rootsv/bringup"
	"rootsv/events"
	"rootsv/logpipe"
	"rootsv/platform"
	"rootsv/registry"
	"rootsv/spawn"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func newTestArbiter(t *testing.T, spawnFn SpawnFunc) (*Arbiter, *platform.FakeEventQueue, *events.Pending) {
	t.Helper()

	queue := platform.NewFakeEventQueue()
	pending := events.New()
	log := discardLogger()
	intake := events.NewIntake(queue, platform.SystemRoot, pending, log)

	pipe, err := logpipe.New()
	if err != nil {
		t.Fatalf("logpipe.New: %v", err)
	}
	t.Cleanup(func() {
		pipe.CloseRead()
		pipe.CloseWrite()
	})

	a := New(Config{
		Mode:     platform.SystemRoot,
		Intake:   intake,
		Pending:  pending,
		Registry: registry.New(),
		Pipe:     pipe,
		Saved:    bringup.SavedStdio{},
		Env:      []string{"PATH=/bin"},
		Log:      log,
		Spawn:    spawnFn,
		Reboot:   func(platform.RebootMode) error { return nil },
	})
	return a, queue, pending
}

func fakeSpawn(pid int, err error) SpawnFunc {
	return func(spawn.Spec) (*spawn.Handle, error) {
		if err != nil {
			return nil, err
		}
		return &spawn.Handle{PID: pid}, nil
	}
}

func TestIterateSpawnsServiceManagerWhenAbsent(t *testing.T) {
	a, queue, _ := newTestArbiter(t, fakeSpawn(4242, nil))
	queue.Inject(platform.Ready{})

	if _, err := a.Iterate(context.Background()); err != nil {
		t.Fatalf("Iterate: %v", err)
	}

	slot := a.cfg.Registry.Get(registry.ServiceManager)
	if !slot.Present() || slot.PID() != 4242 {
		t.Fatalf("expected service manager slot occupied by pid 4242, got %+v", slot)
	}
}

func TestStopKindLatchesAndTerminatesOnceSlotsEmpty(t *testing.T) {
	a, queue, pending := newTestArbiter(t, fakeSpawn(0, errSpawnRefused))
	pending.Set(events.FastHalt)
	queue.Inject(platform.Ready{})

	done, err := a.Iterate(context.Background())
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if !a.Stopping() {
		t.Fatal("expected stopping latch set after FastHalt")
	}
	// Both slots are already empty (spawn is refused in this test), and
	// stopping is latched, so the very first iteration should report
	// done.
	if !done {
		t.Fatal("expected Iterate to report done once stopping and both slots are empty")
	}
}

func TestStoppingNeverSpawnsServiceManager(t *testing.T) {
	spawned := false
	spawnFn := func(spawn.Spec) (*spawn.Handle, error) {
		spawned = true
		return &spawn.Handle{PID: 1}, nil
	}
	a, queue, pending := newTestArbiter(t, spawnFn)
	pending.Set(events.FastPoweroff)
	queue.Inject(platform.Ready{})

	if _, err := a.Iterate(context.Background()); err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if spawned {
		t.Fatal("a stopping arbiter must never spawn a new service manager")
	}
}

func TestSystemControlEmergencyBeatsRegular(t *testing.T) {
	var gotArgv []string
	spawnFn := func(s spawn.Spec) (*spawn.Handle, error) {
		gotArgv = s.Argv
		return &spawn.Handle{PID: 99}, nil
	}
	a, queue, pending := newTestArbiter(t, spawnFn)
	// Occupy the service manager slot so the only spawn the fake sees is
	// the system-control one under test.
	a.cfg.Registry.Occupy(registry.ServiceManager, 1)
	pending.Set(events.Normal)
	pending.Set(events.Emergency)
	queue.Inject(platform.Ready{})

	if _, err := a.Iterate(context.Background()); err != nil {
		t.Fatalf("Iterate: %v", err)
	}

	if !a.cfg.Registry.Get(registry.EmergencySystemControl).Present() {
		t.Fatal("expected emergency_system_control to be spawned over regular")
	}
	if a.cfg.Registry.Get(registry.RegularSystemControl).Present() {
		t.Fatal("only one system-control spawn should happen per iteration")
	}
	found := false
	for _, a := range gotArgv {
		if a == "emergency" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected argv to carry the emergency verb, got %v", gotArgv)
	}
	// The Normal flag must still be pending, since emergency consumed
	// this iteration's single spawn slot.
	if !pending.TestAndClear(events.Normal) {
		t.Fatal("expected normal flag to remain pending for the next iteration")
	}
}

func TestLoggerRestartCoalescesToCycleDirs(t *testing.T) {
	a, queue, pending := newTestArbiter(t, fakeSpawn(0, errSpawnRefused))
	pending.Set(events.RestartLoggerKeepCWD)
	pending.Set(events.RestartLoggerCycleDirs)
	queue.Inject(platform.Ready{})

	if _, err := a.Iterate(context.Background()); err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if !a.loggerTryAllDirs {
		t.Fatal("cycle_dirs should win over keep_cwd and request trying all log directories")
	}
}

// TestStoppingClosesLogPipeWhileCyclogStillRuns guards against a
// shutdown hang: once a stop-kind flag latches and the
// service manager slot has drained, the root must close the log pipe
// *while cyclog may still be blocked reading it*, since that close is
// what causes cyclog's own EOF exit; not something that can wait until
// cyclog has already gone.
func TestStoppingClosesLogPipeWhileCyclogStillRuns(t *testing.T) {
	a, queue, pending := newTestArbiter(t, fakeSpawn(0, errSpawnRefused))
	// Cyclog is still present; the service manager never was.
	if err := a.cfg.Registry.Occupy(registry.Cyclog, 99999); err != nil {
		t.Fatalf("Occupy: %v", err)
	}
	pending.Set(events.FastHalt)
	queue.Inject(platform.Ready{})

	done, err := a.Iterate(context.Background())
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	if done {
		t.Fatal("cyclog is still present, so Iterate must not report done yet")
	}
	if a.cfg.Pipe.Open() {
		t.Fatal("expected the log pipe to be closed as soon as stopping latched and the service manager slot was empty, even though cyclog is still present")
	}
}

var errSpawnRefused = &spawnError{"refused"}

type spawnError struct{ msg string }

func (e *spawnError) Error() string { return e.msg }
