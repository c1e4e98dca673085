package term

import (
	"sync"

	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return isatty.IsTerminal(uintptr(fd)) || isatty.IsCygwinTerminal(uintptr(fd))
}

// Guard holds the state saved by MakeRaw.
type Guard struct {
	fd       int
	oldState *xterm.State
	once     sync.Once
	err      error
}

// MakeRaw puts fd into full raw mode: besides Echo and Canonical it turns
// off signal keys, input translation and output processing. Restore puts
// back the exact attributes fd had before.
func MakeRaw(fd int) (*Guard, error) {
	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, wrap("make raw", fd, err)
	}
	return &Guard{fd: fd, oldState: oldState}, nil
}

// Restore may be called more than once; only the first call touches fd.
func (g *Guard) Restore() error {
	g.once.Do(func() {
		if err := xterm.Restore(g.fd, g.oldState); err != nil {
			g.err = wrap("restore", g.fd, err)
		}
	})
	return g.err
}
