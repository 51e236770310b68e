// Package fillerfd implements the filler-fd discipline: reserve
// descriptors 0-3 early in bring-up so that any file the root opens
// afterwards is guaranteed fd >= 4, then replace each reserved slot
// with its real descriptor (saved stdin, log-pipe endpoint, listening
// socket, …) via dup2, in a fixed order. Every spawned child then
// inherits a fixed numbering (0 stdin, 1/2 the log pipe, 3 the
// listening socket) with none of the four ever left closed.
package fillerfd

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Count is the number of low descriptors reserved: 0 (stdin), 1
// (stdout), 2 (stderr), 3 (the service manager's listening socket).
const Count = 4

// Reservation owns whichever descriptors in 0..Count-1 were unoccupied
// at Reserve time, each plugged with /dev/null until Fill installs the
// real descriptor over it.
type Reservation struct {
	filled [Count]bool
}

// Reserve plugs every closed descriptor below Count with /dev/null, so
// that any fd the rest of initialisation allocates lands at >= Count.
// It relies on open(2) always returning the lowest free descriptor:
// each open that comes back below Count has, by doing so, plugged one
// hole; the first one at or above Count proves the range is full and is
// closed again. Descriptors already open below Count (the inherited
// console, normally) are left alone; bring-up's last-resort I/O step is
// what guarantees 0/1/2 are usable at all.
func Reserve() (*Reservation, error) {
	r := &Reservation{}
	for {
		fd, err := unix.Open(os.DevNull, unix.O_RDWR|unix.O_CLOEXEC, 0)
		if err != nil {
			return nil, fmt.Errorf("fillerfd: open %s: %w", os.DevNull, err)
		}
		if fd >= Count {
			unix.Close(fd)
			return r, nil
		}
	}
}

// Fill replaces whatever occupies fd with src via dup2, atomically
// releasing the filler that held the slot. Each slot may only be filled
// once; filling an already-filled slot is an error, since it would
// silently discard whatever previously claimed that numeric position.
func (r *Reservation) Fill(fd int, src *os.File) error {
	if fd < 0 || fd >= Count {
		return fmt.Errorf("fillerfd: fd %d out of reserved range", fd)
	}
	if r.filled[fd] {
		return fmt.Errorf("fillerfd: fd %d already filled", fd)
	}
	if err := unix.Dup2(int(src.Fd()), fd); err != nil {
		return fmt.Errorf("fillerfd: dup2 %d -> %d: %w", src.Fd(), fd, err)
	}
	// dup2 clears close-on-exec on the target; restore it. Children
	// receive descriptors only through explicit spawn wiring, never by
	// plain inheritance of the root's numbering.
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFD, unix.FD_CLOEXEC); err != nil {
		return fmt.Errorf("fillerfd: set close-on-exec on %d: %w", fd, err)
	}
	r.filled[fd] = true
	return nil
}
