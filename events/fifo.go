package events

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OpenFIFO creates path as a FIFO if it does not already exist and opens
// it O_RDONLY|O_NONBLOCK, so an idle root never blocks waiting for a
// writer.
func OpenFIFO(path string) (*os.File, error) {
	if err := unix.Mkfifo(path, 0600); err != nil && err != unix.EEXIST {
		return nil, fmt.Errorf("mkfifo %s: %w", path, err)
	}
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return os.NewFile(uintptr(fd), path), nil
}

// readNonBlocking reads into buf without blocking, treating EAGAIN as "no
// data right now" rather than an error.
func readNonBlocking(fd int, buf []byte) (int, error) {
	n, err := unix.Read(fd, buf)
	if err != nil {
		if err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
