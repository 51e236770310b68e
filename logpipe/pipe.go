// Package logpipe owns the standing anonymous log pipe: its write end
// is dup'd into the supervision root's own stdout/stderr and the
// service manager's, its read end feeds cyclog's stdin. The pipe
// outlives any single cyclog instance; replacing the logger never
// loses buffered bytes, because the pipe itself is never recreated.
package logpipe

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Pipe is the standing anonymous log pipe. Both ends are close-on-exec
// by default; InstallWriteEnd/cyclog's Stdin wiring explicitly dup2
// past that for the descriptors that must survive exec.
type Pipe struct {
	read  *os.File
	write *os.File
}

// New creates the pipe. It is called exactly once, early in bring-up.
func New() (*Pipe, error) {
	fds := make([]int, 2)
	if err := unix.Pipe2(fds, unix.O_CLOEXEC); err != nil {
		return nil, fmt.Errorf("logpipe: pipe2: %w", err)
	}
	return &Pipe{
		read:  os.NewFile(uintptr(fds[0]), "logpipe-read"),
		write: os.NewFile(uintptr(fds[1]), "logpipe-write"),
	}, nil
}

// ReadFile returns the read end, dup'd into cyclog's stdin.
func (p *Pipe) ReadFile() *os.File { return p.read }

// WriteFile returns the write end, dup'd into the root's and the
// service manager's stdout/stderr.
func (p *Pipe) WriteFile() *os.File { return p.write }

// InstallWriteEnd dup2's the write end into fds (conventionally 1 and
// 2), making it the root's own stdout/stderr before any child spawns.
func (p *Pipe) InstallWriteEnd(fds ...int) error {
	for _, fd := range fds {
		if err := unix.Dup2(int(p.write.Fd()), fd); err != nil {
			return fmt.Errorf("logpipe: dup2 write -> %d: %w", fd, err)
		}
	}
	return nil
}

// CloseRead closes the read end. Called during shutdown once the
// service manager slot is empty, so cyclog observes EOF.
func (p *Pipe) CloseRead() error {
	if p.read == nil {
		return nil
	}
	err := p.read.Close()
	p.read = nil
	return err
}

// CloseWrite closes the write end. Called alongside CloseRead during
// shutdown, after saved stdio has been restored into 1 and 2 so the
// root's own last messages still have a destination.
func (p *Pipe) CloseWrite() error {
	if p.write == nil {
		return nil
	}
	err := p.write.Close()
	p.write = nil
	return err
}

// Open reports whether either end of the pipe is still open. Keeping
// the read end open exactly as long as the service manager or cyclog is
// present is the caller's job, coordinated with the child registry, not
// this type's.
func (p *Pipe) Open() bool {
	return p.read != nil || p.write != nil
}
