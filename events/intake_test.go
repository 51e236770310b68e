package events

import (
	"context"
	"io"
	"log/slog"
	"syscall"
	"testing"

	"rootsv/platform"
)

func TestIntakePumpRaisesFlagsFromSignals(t *testing.T) {
	q := platform.NewFakeEventQueue()
	pending := New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	intake := NewIntake(q, platform.UserSessionRoot, pending, log)

	q.Inject(platform.Ready{Signals: []syscall.Signal{syscall.SIGTERM, syscall.SIGCHLD}})

	if err := intake.Pump(context.Background(), -1); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	if !pending.Halt.Load() {
		t.Fatal("SIGTERM should raise Halt in the user dialect")
	}
	if !pending.Child.Load() {
		t.Fatal("SIGCHLD should raise Child")
	}
}

func TestIntakePumpRaisesUnknownForUnrecognisedSignal(t *testing.T) {
	q := platform.NewFakeEventQueue()
	pending := New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	intake := NewIntake(q, platform.SystemRoot, pending, log)

	q.Inject(platform.Ready{Signals: []syscall.Signal{syscall.SIGTTOU}})

	if err := intake.Pump(context.Background(), -1); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if !pending.TestAndClear(Unknown) {
		t.Fatal("an unrecognised signal should raise the unknown flag")
	}
	if pending.Any() {
		t.Fatal("no other flag should be raised for an unrecognised signal")
	}
}
