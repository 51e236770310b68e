package registry

import (
	"log/slog"
	"os/exec"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestReapAllCollectsKnownExitedChild(t *testing.T) {
	cmd := exec.Command("true")
	if err := cmd.Start(); err != nil {
		t.Skipf("cannot start /bin/true: %v", err)
	}

	r := New()
	_ = r.Occupy(Cyclog, cmd.Process.Pid)

	var reaped []Reaped
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		reaped = ReapAll(r, discardLogger())
		if len(reaped) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if len(reaped) != 1 {
		t.Fatalf("expected exactly one reaped child, got %d", len(reaped))
	}
	if reaped[0].Status != Exited || reaped[0].Code != 0 {
		t.Fatalf("expected Exited/0, got %s/%d", reaped[0].Status, reaped[0].Code)
	}
	// Once reported ended, the slot must be absent from the registry.
	if r.Get(Cyclog).Present() {
		t.Fatal("slot should be cleared once its pid is reaped")
	}
}

func TestReapAllIgnoresUntrackedPID(t *testing.T) {
	cmd := exec.Command("false")
	if err := cmd.Start(); err != nil {
		t.Skipf("cannot start /bin/false: %v", err)
	}

	r := New()
	var reaped []Reaped
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		reaped = ReapAll(r, discardLogger())
		if len(reaped) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if len(reaped) != 1 || reaped[0].Known {
		t.Fatal("an untracked pid should still be reaped, just marked unknown")
	}
	if reaped[0].Status != Exited || reaped[0].Code != 1 {
		t.Fatalf("expected Exited/1, got %s/%d", reaped[0].Status, reaped[0].Code)
	}
}
