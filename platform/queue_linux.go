//go:build linux

package platform

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// epollPoller watches the command-FIFO descriptors with an epoll
// instance. Registration is edge-triggered: the intake drains every
// available byte on each notification, so level-triggered re-reports
// would only produce spurious wakes.
type epollPoller struct {
	epfd int
}

// NewEventQueue constructs the production EventQueue for this platform.
func NewEventQueue() (EventQueue, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll_create1: %w", err)
	}
	return newNotifyQueue(&epollPoller{epfd: epfd}), nil
}

func (p *epollPoller) Add(fd int) error {
	ev := unix.EpollEvent{Events: unix.EPOLLIN | unix.EPOLLET, Fd: int32(fd)}
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("epoll_ctl add fd %d: %w", fd, err)
	}
	return nil
}

func (p *epollPoller) Wait() ([]int, error) {
	events := make([]unix.EpollEvent, 16)
	for {
		n, err := unix.EpollWait(p.epfd, events, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, fmt.Errorf("epoll_wait: %w", err)
		}
		fds := make([]int, 0, n)
		for i := 0; i < n; i++ {
			fds = append(fds, int(events[i].Fd))
		}
		return fds, nil
	}
}

func (p *epollPoller) Close() error {
	return unix.Close(p.epfd)
}
