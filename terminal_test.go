//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd || solaris

package steadylog

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
)

func captureTTYOutput(t *testing.T, fn func(*os.File)) string {
	t.Helper()
	master, slave, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(&buf, master)
		close(done)
	}()
	fn(slave)
	_ = slave.Close()
	<-done
	_ = master.Close()
	return buf.String()
}

func hasANSI(s string) bool {
	return strings.Contains(s, "\x1b[")
}

func TestConsoleSinkDetectsTerminal(t *testing.T) {
	out := captureTTYOutput(t, func(tty *os.File) {
		sink := NewConsoleSink(tty)
		if !sink.Terminal() {
			t.Errorf("expected pty slave to be a terminal")
		}
		logger := New(NullClock{}, sink)
		if logger.Colored() != colorOutput {
			t.Errorf("terminal logger Colored()=%v, want %v", logger.Colored(), colorOutput)
		}
		logger.LogOk("tty ready")
		NewCompact(NullClock{}, NewWriterSink(tty)).LogInfo("compact tty")
	})
	if !strings.Contains(out, "tty ready") || !strings.Contains(out, "compact tty") {
		t.Fatalf("missing records in tty output %q", out)
	}
	if colorOutput && !hasANSI(out) {
		t.Fatalf("expected colour on a terminal, got %q", out)
	}
}

func TestWriterSinkPipeIsNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if NewWriterSink(w).Terminal() {
		t.Fatalf("pipe reported as terminal")
	}
	if NewConsoleSink(w).Terminal() {
		t.Fatalf("console sink on a pipe reported as terminal")
	}
	if New(NullClock{}, NewWriterSink(w)).Colored() {
		t.Fatalf("pipe output should not be coloured by default")
	}
}
