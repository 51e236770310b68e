// Package svcmgr owns the one thing the supervision root knows about the
// service manager beyond its slot in the registry: the UCSPI-style
// listening socket handed to it at a fixed descriptor, and the
// environment-sanitisation rule that keeps a stale LISTEN_FDNAMES from
// describing a socket the child didn't actually inherit.
package svcmgr

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// ListenSocketFD is the fixed descriptor the service manager's listening
// socket occupies in its own process, reserved by fillerfd.Reserve
// alongside 0-2.
const ListenSocketFD = 3

// Socket is the listening UCSPI transport: a Unix-domain stream socket,
// the concrete transport the reference tool family uses.
type Socket struct {
	fd   int
	path string
}

// Listen creates and binds a Unix-domain stream socket at path, removing
// any stale socket file first (a crash-restarted root must not fail to
// rebind the address an earlier instance left behind).
func Listen(path string) (*Socket, error) {
	_ = unix.Unlink(path)

	// SOCK_CLOEXEC: only the service manager inherits this descriptor,
	// through an explicit dup at spawn time; cyclog and system-control
	// children must never see it.
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("svcmgr: socket: %w", err)
	}
	addr := &unix.SockaddrUnix{Name: path}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("svcmgr: bind %s: %w", path, err)
	}
	if err := unix.Listen(fd, unix.SOMAXCONN); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("svcmgr: listen %s: %w", path, err)
	}
	return &Socket{fd: fd, path: path}, nil
}

// FD returns the raw listening descriptor, before it is dup2'd into
// ListenSocketFD in the service manager's spawn spec.
func (s *Socket) FD() int { return s.fd }

// File returns an independently-owned duplicate of the listening
// descriptor for call sites that need an *os.File whose lifetime they
// control (fillerfd.Fill, spawn ExtraFiles). Wrapping s.fd itself in an
// os.File would hand its close-on-GC finalizer the descriptor the
// Socket still needs for every future service-manager respawn; the dup
// keeps the two lifetimes separate. The duplicate is close-on-exec for
// the same reason the socket itself is.
func (s *Socket) File() (*os.File, error) {
	fd, err := unix.FcntlInt(uintptr(s.fd), unix.F_DUPFD_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("svcmgr: dup listen socket: %w", err)
	}
	return os.NewFile(uintptr(fd), s.path), nil
}

// Path returns the socket's filesystem path, for logging and for the
// service manager's own LISTEN_FDNAMES-equivalent discovery.
func (s *Socket) Path() string { return s.path }

// Close closes the root's own copy of the socket descriptor. The
// service manager keeps its own inherited copy (dup2'd, not moved), so
// this is safe to call once the descriptor has been installed in a
// spawned child.
func (s *Socket) Close() error {
	return unix.Close(s.fd)
}

// SanitizeEnviron strips LISTEN_FDNAMES from env when LISTEN_FDS is
// present: a stale name list must never outlive the socket count it was
// generated for. Since this module always passes exactly one socket at
// a fixed descriptor, any LISTEN_FDNAMES inherited from a previous
// environment is simply dropped; the service manager is expected to
// default to an unnamed single descriptor when the variable is absent.
func SanitizeEnviron(env []string) []string {
	hasListenFDs := false
	for _, kv := range env {
		if strings.HasPrefix(kv, "LISTEN_FDS=") {
			hasListenFDs = true
			break
		}
	}
	if !hasListenFDs {
		return env
	}

	out := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, "LISTEN_FDNAMES=") {
			continue
		}
		out = append(out, kv)
	}
	return out
}
