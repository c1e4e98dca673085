package util

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

// LoggerHandler writes one line per record:
//
//	[15:04:05.000]  INFO: msg key=value ...
type LoggerHandler struct {
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
	w      io.Writer
}

func (h *LoggerHandler) clone() *LoggerHandler {
	return &LoggerHandler{
		level:  h.level,
		attrs:  slices.Clip(h.attrs),
		groups: slices.Clip(h.groups),
		mu:     h.mu,
		w:      h.w,
	}
}

// NewLogger returns a handler writing to w at level. DEBUG=true in the
// environment forces the debug level.
func NewLogger(w io.Writer, level slog.Level) *LoggerHandler {
	h := &LoggerHandler{
		level: new(slog.LevelVar),
		mu:    new(sync.Mutex),
		w:     w,
	}
	h.SetLevel(level)
	return h
}

// SetLevel changes the minimum level of h and every handler derived from it.
func (h *LoggerHandler) SetLevel(level slog.Level) {
	if os.Getenv("DEBUG") == "true" {
		level = slog.LevelDebug
	}
	h.level.Set(level)
}

// Enabled checks if the given log level is enabled.
func (h *LoggerHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats a log record and writes it.
func (h *LoggerHandler) Handle(_ context.Context, r slog.Record) error {
	var str strings.Builder

	time := r.Time.Format("15:04:05.000")

	fmt.Fprintf(&str, "[%s] %5s: %s", time, r.Level, r.Message)

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	for _, a := range h.attrs {
		fmt.Fprintf(&str, " %s", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&str, " %s%s", prefix, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, str.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes added.
func (h *LoggerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	for _, a := range attrs {
		a.Key = prefix + a.Key
		h2.attrs = append(h2.attrs, a)
	}
	return h2
}

// WithGroup returns a new Handler with the given group name added.
func (h *LoggerHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}
