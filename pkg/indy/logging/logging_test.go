package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newBufferLogger(level slog.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return New(slog.New(handler)), &buf
}

func TestTraceLevel(t *testing.T) {
	l, buf := newBufferLogger(LevelTrace)
	l.Trace(context.Background(), "fine detail", "k", "v")

	out := buf.String()
	if !strings.Contains(out, "fine detail") {
		t.Fatalf("trace record missing from output: %q", out)
	}
	if !strings.Contains(out, "k=v") {
		t.Fatalf("attribute missing from output: %q", out)
	}
}

func TestTraceSuppressedAtDefaultLevel(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)
	l.Trace(context.Background(), "fine detail")
	if buf.Len() != 0 {
		t.Fatalf("trace record not suppressed: %q", buf.String())
	}

	l.Info(context.Background(), "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("info record missing from output: %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)
	l.With("component", "dispatcher").Info(context.Background(), "registered")
	if !strings.Contains(buf.String(), "component=dispatcher") {
		t.Fatalf("bound attribute missing from output: %q", buf.String())
	}
}

func TestNewNilDefaults(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}
