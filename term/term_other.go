//go:build !linux && !darwin

package term

type sysTermios struct{}

const (
	Echo      uint32 = 0o10
	Canonical uint32 = 0o2
)

// SystemOps fails every call: this platform has no termios binding.
type SystemOps struct{}

func (SystemOps) GetAttributes(int) (Attributes, error) {
	return Attributes{}, ErrUnsupported
}

func (SystemOps) SetAttributes(int, Action, Attributes) error {
	return ErrUnsupported
}

func (SystemOps) ReadByte(int) (byte, error) {
	return 0, ErrUnsupported
}

func isNotTTY(error) bool {
	return false
}
