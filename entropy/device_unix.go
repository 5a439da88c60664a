//go:build unix

package entropy

import (
	"golang.org/x/sys/unix"
)

const sourceName = "/dev/urandom"

// handle is a read-only file descriptor on the random device
type handle struct {
	fd int
}

func openHandle() (handle, error) {
	fd, err := unix.Open(sourceName, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return handle{fd: -1}, err
	}
	return handle{fd: fd}, nil
}

func (h handle) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := unix.Read(h.fd, p[n:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, err
		}
		if m == 0 {
			return n, ErrShortRead
		}
		n += m
	}
	return n, nil
}

func (h handle) Close() error {
	return unix.Close(h.fd)
}
