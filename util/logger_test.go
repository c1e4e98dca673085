package util

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestLoggerHandlerFormat(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	logger := slog.New(NewLogger(&buf, slog.LevelInfo))

	logger.Info("key", slog.Int("code", 113), slog.String("name", "'q'"))

	line := strings.TrimSpace(buf.String())
	re := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\.\d{3}\]  INFO: key code=113 name='q'$`)
	if !re.MatchString(line) {
		t.Errorf("unexpected line: %q", line)
	}
}

func TestLoggerHandlerLevel(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	logger := slog.New(NewLogger(&buf, slog.LevelWarn))

	logger.Info("dropped")
	logger.Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("Expected info record to be filtered")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("Expected warn record to be written")
	}
}

func TestLoggerHandlerDebugEnv(t *testing.T) {
	t.Setenv("DEBUG", "true")
	var buf bytes.Buffer
	logger := slog.New(NewLogger(&buf, slog.LevelError))

	logger.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Error("Expected DEBUG=true to enable debug records")
	}
}

func TestLoggerHandlerAttrsAndGroups(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	logger := slog.New(NewLogger(&buf, slog.LevelInfo)).
		With(slog.Int("fd", 0)).
		WithGroup("term")

	logger.Info("raw", slog.Bool("on", true))

	if !strings.Contains(buf.String(), "fd=0 term.on=true") {
		t.Errorf("unexpected line: %q", buf.String())
	}
}

func TestGetLogfile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	t.Setenv("HOME", dir)

	f, err := GetLogfile("readkey raw")
	if err != nil {
		t.Fatalf("GetLogfile: %v", err)
	}
	defer f.Close()

	if filepath.Base(f.Name()) != "readkey-raw.log" {
		t.Errorf("log file = %q", f.Name())
	}
	if filepath.Base(filepath.Dir(f.Name())) != "readkey" {
		t.Errorf("log dir = %q", filepath.Dir(f.Name()))
	}
	if _, err := os.Stat(f.Name()); err != nil {
		t.Error(err)
	}
}

func TestLogName(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"readkey", "readkey.log"},
		{"readkey status", "readkey-status.log"},
		{"  readkey   cooked ", "readkey-cooked.log"},
		{"a/b", "a_b.log"},
		{"", "readkey.log"},
	}

	for _, tt := range tests {
		if got := logName(tt.command); got != tt.want {
			t.Errorf("logName(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}
