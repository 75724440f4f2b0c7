package indy

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbca/libindy-go/pkg/indy/logging"
)

type logEntry struct {
	level string
	msg   string
	attrs []any
}

// captureLogger records every emitted entry; With copies share the sink.
type captureLogger struct {
	attrs []any

	mu      *sync.Mutex
	entries *[]logEntry
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{mu: new(sync.Mutex), entries: new([]logEntry)}
}

func (l *captureLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	attrs := append(append([]any{}, l.attrs...), args...)
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, attrs: attrs})
}

func (l *captureLogger) Trace(_ context.Context, msg string, args ...any) {
	l.record("trace", msg, args)
}

func (l *captureLogger) Debug(_ context.Context, msg string, args ...any) {
	l.record("debug", msg, args)
}

func (l *captureLogger) Info(_ context.Context, msg string, args ...any) {
	l.record("info", msg, args)
}

func (l *captureLogger) Warn(_ context.Context, msg string, args ...any) {
	l.record("warn", msg, args)
}

func (l *captureLogger) Error(_ context.Context, msg string, args ...any) {
	l.record("error", msg, args)
}

func (l *captureLogger) With(args ...any) logging.Logger {
	return &captureLogger{
		attrs:   append(append([]any{}, l.attrs...), args...),
		mu:      l.mu,
		entries: l.entries,
	}
}

func (l *captureLogger) all() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry{}, *l.entries...)
}

func TestEmitNativeLogSeverityMapping(t *testing.T) {
	cl := newCaptureLogger()
	r := newRuntime(newFakeTable(), WithLogger(cl))

	r.emitNativeLog(1, "indy::wallet", "boom", "wallet.rs", 10)
	r.emitNativeLog(2, "indy::wallet", "careful", "wallet.rs", 11)
	r.emitNativeLog(3, "indy::wallet", "opened", "wallet.rs", 12)
	r.emitNativeLog(4, "indy::wallet", "detail", "wallet.rs", 13)
	r.emitNativeLog(5, "indy::wallet", "fine detail", "wallet.rs", 14)

	entries := cl.all()
	require.Len(t, entries, 5)
	require.Equal(t, []string{"error", "warn", "info", "debug", "trace"},
		[]string{entries[0].level, entries[1].level, entries[2].level,
			entries[3].level, entries[4].level})
	require.Equal(t, "boom", entries[0].msg)
}

func TestEmitNativeLogTargetNamespace(t *testing.T) {
	cl := newCaptureLogger()
	r := newRuntime(newFakeTable(), WithLogger(cl))

	r.emitNativeLog(3, "indy::wallet::storage", "opened", "storage.rs", 42)

	entries := cl.all()
	require.Len(t, entries, 1)
	require.Contains(t, entries[0].attrs, "native.indy.wallet.storage")
	require.Contains(t, entries[0].attrs, "storage.rs")
	require.Contains(t, entries[0].attrs, 42)
}
