package logpipe

import (
	"os"
	"testing"
)

func TestPipeOpenAndClose(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !p.Open() {
		t.Fatal("a freshly created pipe should report Open")
	}

	if err := p.CloseRead(); err != nil {
		t.Fatalf("CloseRead: %v", err)
	}
	if !p.Open() {
		t.Fatal("Pipe should still report Open while the write end remains")
	}

	if err := p.CloseWrite(); err != nil {
		t.Fatalf("CloseWrite: %v", err)
	}
	if p.Open() {
		t.Fatal("Pipe should report closed once both ends are gone")
	}
}

// TestPipeInstallWriteEnd verifies InstallWriteEnd really dup2s the log
// pipe's write end into the target fd: a write through that fd must be
// readable from the pipe's own read end.
func TestPipeInstallWriteEnd(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.CloseRead()

	placeholder, err := os.CreateTemp("", "logpipe-install")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(placeholder.Name())
	targetFD := int(placeholder.Fd())

	if err := p.InstallWriteEnd(targetFD); err != nil {
		t.Fatalf("InstallWriteEnd: %v", err)
	}
	defer p.CloseWrite()

	if _, err := placeholder.Write([]byte("hello")); err != nil {
		t.Fatalf("write through installed fd: %v", err)
	}

	buf := make([]byte, 5)
	n, err := p.ReadFile().Read(buf)
	if err != nil {
		t.Fatalf("read back from pipe: %v", err)
	}
	if string(buf[:n]) != "hello" {
		t.Fatalf("expected %q, got %q", "hello", string(buf[:n]))
	}
}
