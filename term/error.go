package term

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotTerminal: the descriptor has no terminal attributes (ENOTTY).
	ErrNotTerminal = errors.New("not a terminal")
	// ErrIO covers every other failed call, bad descriptors included.
	ErrIO = errors.New("i/o failure")
	// ErrEndOfInput is returned by ReadKey when the read got zero bytes.
	// A NUL keypress is byte 0 with a nil error.
	ErrEndOfInput = errors.New("end of input")
	// ErrUnsupported is returned by SystemOps on platforms other than
	// linux and darwin. It is reported under the ErrIO kind.
	ErrUnsupported = errors.New("terminal control unsupported on this platform")
)

// Error describes a failed terminal operation. Kind is one of
// ErrNotTerminal, ErrIO or ErrEndOfInput.
type Error struct {
	Op   string
	Fd   int
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil || e.Err == e.Kind {
		return fmt.Sprintf("term: %s fd %d: %s", e.Op, e.Fd, e.Kind)
	}
	return fmt.Sprintf("term: %s fd %d: %s: %s", e.Op, e.Fd, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func wrap(op string, fd int, err error) error {
	var te *Error
	if errors.As(err, &te) {
		return err
	}
	return &Error{Op: op, Fd: fd, Kind: kindOf(err), Err: err}
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, ErrNotTerminal):
		return ErrNotTerminal
	case errors.Is(err, ErrEndOfInput), errors.Is(err, io.EOF):
		return ErrEndOfInput
	case isNotTTY(err):
		return ErrNotTerminal
	}
	return ErrIO
}
