package shutdown

import (
	"io"
	"log/slog"
	"testing"

	"rootsv/bringup"
	"rootsv/events"
	"rootsv/logpipe"
	"rootsv/platform"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func TestModeForMapsStopKinds(t *testing.T) {
	cases := []struct {
		kind events.EventKind
		want platform.RebootMode
	}{
		{events.FastPoweroff, platform.RebootPowerOff},
		{events.FastHalt, platform.RebootHalt},
		{events.FastPowercycle, platform.RebootPowerCycle},
		{events.FastReboot, platform.RebootRestart},
	}
	for _, c := range cases {
		if got := ModeFor(c.kind); got != c.want {
			t.Errorf("ModeFor(%v) = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestFinalizeUserSessionRootSkipsReboot(t *testing.T) {
	called := false
	rebootFn := func(platform.RebootMode) error {
		called = true
		return nil
	}

	pipe, err := logpipe.New()
	if err != nil {
		t.Fatalf("logpipe.New: %v", err)
	}

	var saved bringup.SavedStdio
	if err := Finalize(platform.UserSessionRoot, events.FastHalt, saved, pipe, discardLogger(), rebootFn); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if called {
		t.Fatal("UserSessionRoot must not invoke the reboot syscall")
	}
	if pipe.Open() {
		t.Fatal("Finalize should close both pipe ends regardless of mode")
	}
}

func TestFinalizeSystemRootInvokesReboot(t *testing.T) {
	t.Setenv("container", "")

	var gotMode platform.RebootMode
	called := false
	rebootFn := func(m platform.RebootMode) error {
		called = true
		gotMode = m
		return nil
	}

	pipe, err := logpipe.New()
	if err != nil {
		t.Fatalf("logpipe.New: %v", err)
	}

	var saved bringup.SavedStdio
	if err := Finalize(platform.SystemRoot, events.FastPoweroff, saved, pipe, discardLogger(), rebootFn); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !called {
		t.Fatal("SystemRoot must invoke the reboot syscall")
	}
	if gotMode != platform.RebootPowerOff {
		t.Fatalf("expected RebootPowerOff, got %v", gotMode)
	}
}
