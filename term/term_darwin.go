//go:build darwin

package term

import (
	"errors"

	"golang.org/x/sys/unix"
)

type sysTermios = unix.Termios

const (
	Echo      uint32 = unix.ECHO
	Canonical uint32 = unix.ICANON
)

const getTermios = unix.TIOCGETA

var setTermios = [...]uint{
	Now:   unix.TIOCSETA,
	Drain: unix.TIOCSETAW,
	Flush: unix.TIOCSETAF,
}

// SystemOps talks to the kernel through ioctl(2) and read(2).
type SystemOps struct{}

// tcflag_t is 64 bits wide on darwin; every defined flag fits in the low 32.
func (SystemOps) GetAttributes(fd int) (Attributes, error) {
	t, err := unix.IoctlGetTermios(fd, getTermios)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Iflag: uint32(t.Iflag),
		Oflag: uint32(t.Oflag),
		Cflag: uint32(t.Cflag),
		Lflag: uint32(t.Lflag),
		sys:   *t,
	}, nil
}

func (SystemOps) SetAttributes(fd int, when Action, attrs Attributes) error {
	if when < Now || when > Flush {
		return errors.New("invalid action " + when.String())
	}
	const low = 0xffffffff
	t := attrs.sys
	t.Iflag = t.Iflag&^low | uint64(attrs.Iflag)
	t.Oflag = t.Oflag&^low | uint64(attrs.Oflag)
	t.Cflag = t.Cflag&^low | uint64(attrs.Cflag)
	t.Lflag = t.Lflag&^low | uint64(attrs.Lflag)
	return unix.IoctlSetTermios(fd, setTermios[when], &t)
}

func (SystemOps) ReadByte(fd int) (byte, error) {
	return readByte(fd)
}
