// Package spawn forks and execs the supervision root's various
// transient and long-lived children: build an argv and environment,
// apply a deadline, start, report what happened. A child is never
// awaited here (the registry's reap loop owns that), and the deadline
// is a real SIGALRM delivered to the child, not a context cancellation
// that would SIGKILL it from the Go runtime's exec machinery.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// Spec describes one child to fork+exec.
type Spec struct {
	// Argv is the full argument vector; Argv[0] is looked up on PATH.
	Argv []string
	// Env is the complete environment to pass (already sanitised by the
	// caller; see svcmgr.SanitizeEnviron).
	Env []string
	// Dir is the working directory to chdir to before exec, or "" for
	// the current one.
	Dir string
	// Stdin/Stdout/Stderr are dup'd into the child's 0/1/2.
	Stdin, Stdout, Stderr *os.File
	// ExtraFiles are dup'd starting at fd 3 (entry i becomes fd 3+i),
	// matching os/exec.Cmd.ExtraFiles; used to hand the service
	// manager its listening socket at the fixed listen_socket_fd.
	ExtraFiles []*os.File
	// Setsid makes the child a new session leader.
	Setsid bool
}

// Handle is a spawned child's live identity.
type Handle struct {
	PID int
	cmd *exec.Cmd
}

// Start forks and execs spec, returning immediately with the child's
// PID; it does not wait for the child. Fork/exec failures are returned
// to the caller to log and leave the slot empty.
func Start(spec Spec) (*Handle, error) {
	if len(spec.Argv) == 0 {
		return nil, fmt.Errorf("spawn: empty argv")
	}

	path, err := exec.LookPath(spec.Argv[0])
	if err != nil {
		return nil, fmt.Errorf("spawn: lookup %s: %w", spec.Argv[0], err)
	}

	cmd := exec.Command(path, spec.Argv[1:]...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr
	cmd.ExtraFiles = spec.ExtraFiles
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: spec.Setsid}

	// Signal dispositions need no explicit reset: the root's handlers
	// are os/signal.Notify registrations, which do not survive execve,
	// so the child starts with every signal at its default.
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", spec.Argv[0], err)
	}

	// The child is now forked and exec'd (or mid-exec, in which case
	// Start already waited for execve to either replace the image or
	// report an error via the exec pipe); release the *os.Process
	// bookkeeping Go's exec package would otherwise hold, since
	// registry.ReapAll, not cmd.Wait, reaps this PID.
	pid := cmd.Process.Pid
	cmd.Process.Release()

	return &Handle{PID: pid, cmd: cmd}, nil
}

// AlarmAfter arms d as a wall-clock deadline on pid: if the child has not
// exited by then, it is sent SIGALRM. It returns a cancel func to call
// once the child is known to have exited so the timer does not fire on a
// PID that may since have been reused.
func AlarmAfter(pid int, d time.Duration) (cancel func()) {
	timer := time.AfterFunc(d, func() {
		_ = syscall.Kill(pid, syscall.SIGALRM)
	})
	return func() { timer.Stop() }
}
