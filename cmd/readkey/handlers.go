package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/souhoc/readkey"
	"github.com/souhoc/readkey/term"
)

type Handler struct {
	ctl *term.Controller
	cfg readkey.Config
	out io.Writer
}

// Enter switches cfg.Fd to raw mode and returns the function that undoes it.
func (h *Handler) Enter() (func() error, error) {
	fd := h.cfg.Fd
	if h.cfg.FullRaw {
		g, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		slog.Debug("handler.Enter", slog.Int("fd", fd), slog.String("mode", "full"))
		return g.Restore, nil
	}

	if err := h.ctl.EnterRawMode(fd); err != nil {
		return nil, err
	}
	slog.Debug("handler.Enter", slog.Int("fd", fd), slog.String("mode", "echo+canonical"))
	return func() error { return h.ctl.LeaveRawMode(fd) }, nil
}

// Loop prints every key read from cfg.Fd until the quit key, the key count
// or the end of input. It returns the number of keys printed.
func (h *Handler) Loop() (int, error) {
	fd := h.cfg.Fd
	quit := h.cfg.Quit()
	n := 0

	fmt.Fprintf(h.out, "Reading keys from fd %d. Press %s to quit.\r\n", fd, term.KeyName(quit))

	for h.cfg.Count == 0 || n < h.cfg.Count {
		st := time.Now()
		b, err := h.ctl.ReadKey(fd)
		if err != nil {
			if errors.Is(err, term.ErrEndOfInput) {
				slog.Info("end of input", slog.Int("keys", n))
				return n, nil
			}
			return n, err
		}

		slog.Debug("key",
			slog.Int("code", int(b)),
			slog.String("name", term.KeyName(b)),
			slog.Duration("wait", time.Since(st)),
		)

		if b == quit {
			return n, nil
		}

		fmt.Fprintf(h.out, "%3d 0x%02x %s\r\n", b, b, term.KeyName(b))
		n++
	}

	return n, nil
}

// Run enters raw mode, runs Loop and always leaves raw mode. onRaw, if
// set, is handed the restore function once raw mode is on.
func (h *Handler) Run(onRaw func(restore func() error)) (err error) {
	restore, err := h.Enter()
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil {
			slog.Error("restore", slog.Any("error", rerr))
			if err == nil {
				err = rerr
			}
		}
	}()
	if onRaw != nil {
		onRaw(restore)
	}

	n, err := h.Loop()
	slog.Info("done", slog.Int("keys", n), slog.Any("error", err))
	return err
}

func modeName(raw bool) string {
	if raw {
		return "raw"
	}
	return "cooked"
}
