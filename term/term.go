// Package term toggles a terminal between raw and cooked input and reads
// single bytes from a descriptor.
//
// Raw mode here means exactly two local-mode bits cleared: Echo and
// Canonical. Every other terminal attribute is fetched from the OS and handed
// back untouched. Use MakeRaw for the conventional full raw mode.
package term

import "os"

// Action selects when SetAttributes takes effect.
type Action int

const (
	// Now applies the change immediately.
	Now Action = iota
	// Drain waits for pending output to be written first.
	Drain
	// Flush waits for pending output and discards unread input.
	Flush
)

func (a Action) String() string {
	switch a {
	case Now:
		return "now"
	case Drain:
		return "drain"
	case Flush:
		return "flush"
	}
	return "unknown"
}

// Attributes is the terminal-control record of a descriptor.
//
// The four flag fields are the only ones exposed. The platform record they
// were read from travels along so SetAttributes can write back control
// characters and line speeds exactly as they were fetched.
type Attributes struct {
	Iflag uint32 // input modes
	Oflag uint32 // output modes
	Cflag uint32 // control modes
	Lflag uint32 // local modes

	sys sysTermios
}

// Raw reports whether both Echo and Canonical are clear.
func (a Attributes) Raw() bool {
	return a.Lflag&(Echo|Canonical) == 0
}

// Ops is the boundary to the operating system. SystemOps is the real one.
type Ops interface {
	GetAttributes(fd int) (Attributes, error)
	SetAttributes(fd int, when Action, attrs Attributes) error
	ReadByte(fd int) (byte, error)
}

// Controller performs mode changes and key reads through an Ops.
// It keeps no state between calls: every mode change re-reads the current
// attributes from the descriptor.
type Controller struct {
	ops Ops
}

// New returns a Controller using ops. A nil ops means SystemOps.
func New(ops Ops) *Controller {
	if ops == nil {
		ops = SystemOps{}
	}
	return &Controller{ops: ops}
}

// EnterRawMode clears Echo and Canonical on fd, flushing pending input.
// Keypresses are then delivered byte by byte without being echoed.
func (c *Controller) EnterRawMode(fd int) error {
	return c.update("enter raw mode", fd, func(a *Attributes) {
		a.Lflag &^= Echo | Canonical
	})
}

// LeaveRawMode sets Echo and Canonical on fd, flushing pending input.
// Only those two bits are restored; it is safe to call in cooked mode.
func (c *Controller) LeaveRawMode(fd int) error {
	return c.update("leave raw mode", fd, func(a *Attributes) {
		a.Lflag |= Echo | Canonical
	})
}

func (c *Controller) update(op string, fd int, mutate func(*Attributes)) error {
	attrs, err := c.ops.GetAttributes(fd)
	if err != nil {
		return wrap(op, fd, err)
	}
	mutate(&attrs)
	if err := c.ops.SetAttributes(fd, Flush, attrs); err != nil {
		return wrap(op, fd, err)
	}
	return nil
}

// IsRaw reports whether fd currently has Echo and Canonical cleared.
func (c *Controller) IsRaw(fd int) (bool, error) {
	attrs, err := c.ops.GetAttributes(fd)
	if err != nil {
		return false, wrap("get attributes", fd, err)
	}
	return attrs.Raw(), nil
}

// ReadKey blocks until one byte is available on fd and returns it.
// On failure the byte is 0 and the error tells why; a zero byte with a nil
// error is a real NUL keypress.
func (c *Controller) ReadKey(fd int) (byte, error) {
	b, err := c.ops.ReadByte(fd)
	if err != nil {
		return 0, wrap("read key", fd, err)
	}
	return b, nil
}

var std = New(nil)

func stdoutFd() int {
	return int(os.Stdout.Fd())
}

// EnterRawMode puts the terminal on standard output into raw mode.
// The descriptor is looked up on each call.
func EnterRawMode() error {
	return std.EnterRawMode(stdoutFd())
}

// LeaveRawMode returns the terminal on standard output to cooked mode.
func LeaveRawMode() error {
	return std.LeaveRawMode(stdoutFd())
}

// ReadKey reads one byte from fd using the operating system.
func ReadKey(fd int) (byte, error) {
	return std.ReadKey(fd)
}
