//go:build linux || darwin

package term

import (
	"errors"

	"golang.org/x/sys/unix"
)

func readByte(fd int) (byte, error) {
	var buf [1]byte
	for {
		n, err := unix.Read(fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, ErrEndOfInput
		}
		return buf[0], nil
	}
}

func isNotTTY(err error) bool {
	return errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.ENODEV)
}
