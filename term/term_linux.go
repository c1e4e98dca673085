//go:build linux

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

const getTermios = unix.TCGETS

var setTermios = [...]uint{
	Now:   unix.TCSETS,
	Drain: unix.TCSETSW,
	Flush: unix.TCSETSF,
}

// SystemOps talks to the kernel through ioctl(2) and read(2).
type SystemOps struct{}

func (SystemOps) GetAttributes(fd int) (Attributes, error) {
	t, err := unix.IoctlGetTermios(fd, getTermios)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		Iflag: t.Iflag,
		Oflag: t.Oflag,
		Cflag: t.Cflag,
		Lflag: t.Lflag,
		sys:   *t,
	}, nil
}

func (SystemOps) SetAttributes(fd int, when Action, attrs Attributes) error {
	if when < Now || when > Flush {
		return errors.New("invalid action " + when.String())
	}
	t := attrs.sys
	t.Iflag = attrs.Iflag
	t.Oflag = attrs.Oflag
	t.Cflag = attrs.Cflag
	t.Lflag = attrs.Lflag
	return unix.IoctlSetTermios(fd, setTermios[when], &t)
}

func (SystemOps) ReadByte(fd int) (byte, error) {
	return readByte(fd)
}
