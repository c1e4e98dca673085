//go:build linux || darwin

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/spf13/cobra"

	"github.com/souhoc/readkey/term"
)

func stdoutPty(t *testing.T) int {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	old := os.Stdout
	os.Stdout = tty
	t.Cleanup(func() {
		os.Stdout = old
		tty.Close()
		ptmx.Close()
	})
	return int(tty.Fd())
}

func execute(t *testing.T, cmd *cobra.Command) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestRawCookedStatusCommands(t *testing.T) {
	fd := stdoutPty(t)

	if out, err := execute(t, statusCmd()); err != nil || out != "cooked" {
		t.Fatalf("status = %q, %v, want cooked", out, err)
	}

	if _, err := execute(t, rawCmd()); err != nil {
		t.Fatalf("raw: %v", err)
	}
	if raw, _ := term.New(nil).IsRaw(fd); !raw {
		t.Error("Expected raw mode after raw command")
	}
	if out, err := execute(t, statusCmd()); err != nil || out != "raw" {
		t.Errorf("status = %q, %v, want raw", out, err)
	}

	if _, err := execute(t, cookedCmd()); err != nil {
		t.Fatalf("cooked: %v", err)
	}
	if out, err := execute(t, statusCmd()); err != nil || out != "cooked" {
		t.Errorf("status = %q, %v, want cooked", out, err)
	}
}

func TestStatusCommandNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	t.Cleanup(func() {
		os.Stdout = old
		r.Close()
		w.Close()
	})

	_, err = execute(t, statusCmd())
	if !errors.Is(err, term.ErrNotTerminal) {
		t.Errorf("err = %v, want ErrNotTerminal", err)
	}
}
