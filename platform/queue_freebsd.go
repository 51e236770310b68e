//go:build freebsd

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// kqueuePoller watches the command-FIFO descriptors with EVFILT_READ
// registrations on a kqueue. EV_CLEAR makes them edge-triggered, to
// match the full drain the intake performs on each notification.
type kqueuePoller struct {
	kq int
}

// NewEventQueue constructs the production EventQueue for this platform.
func NewEventQueue() (EventQueue, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, fmt.Errorf("kqueue: %w", err)
	}
	if _, err := unix.FcntlInt(uintptr(kq), unix.F_SETFD, unix.FD_CLOEXEC); err != nil {
		unix.Close(kq)
		return nil, fmt.Errorf("fcntl FD_CLOEXEC: %w", err)
	}
	return newNotifyQueue(&kqueuePoller{kq: kq}), nil
}

func (p *kqueuePoller) Add(fd int) error {
	kev := unix.Kevent_t{
		Ident:  uint64(fd),
		Filter: unix.EVFILT_READ,
		Flags:  unix.EV_ADD | unix.EV_ENABLE | unix.EV_CLEAR,
	}
	if _, err := unix.Kevent(p.kq, []unix.Kevent_t{kev}, nil, nil); err != nil {
		return fmt.Errorf("kevent add fd %d: %w", fd, err)
	}
	return nil
}

func (p *kqueuePoller) Wait() ([]int, error) {
	events := make([]unix.Kevent_t, 16)
	for {
		n, err := unix.Kevent(p.kq, nil, events, nil)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("kevent: %w", err)
		}
		fds := make([]int, 0, n)
		for i := 0; i < n; i++ {
			fds = append(fds, int(events[i].Ident))
		}
		return fds, nil
	}
}

func (p *kqueuePoller) Close() error {
	return unix.Close(p.kq)
}
