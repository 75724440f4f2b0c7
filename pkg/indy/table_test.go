package indy

import (
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// fakeTable is an in-memory command table standing in for the native
// library. Commands are plain Go closures; call counts are recorded per
// name.
type fakeTable struct {
	mu       sync.Mutex
	commands map[string]command
	calls    map[string]int
}

func newFakeTable() *fakeTable {
	t := &fakeTable{commands: map[string]command{}, calls: map[string]int{}}
	// Initialization always registers the logging bridge.
	t.set("indy_set_logger", func(args ...uintptr) uintptr { return 0 })
	return t
}

func (t *fakeTable) set(name string, cmd command) {
	t.mu.Lock()
	t.commands[name] = cmd
	t.mu.Unlock()
}

func (t *fakeTable) Resolve(name string) (command, error) {
	t.mu.Lock()
	cmd, ok := t.commands[name]
	t.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, name)
	}
	return func(args ...uintptr) uintptr {
		t.mu.Lock()
		t.calls[name]++
		t.mu.Unlock()
		return cmd(args...)
	}, nil
}

func (t *fakeTable) Implements(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.commands[name]
	return ok
}

func (t *fakeTable) callCount(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls[name]
}

// setCurrentError installs an indy_get_current_error command that writes
// the given JSON detail blob through the out-parameter.
func (t *fakeTable) setCurrentError(blob string) {
	buf := append([]byte(blob), 0)
	t.set("indy_get_current_error", func(args ...uintptr) uintptr {
		*(*uintptr)(unsafe.Pointer(args[0])) = uintptr(unsafe.Pointer(&buf[0]))
		return 0
	})
}

func newTestRuntime(t *testing.T, table *fakeTable) *Runtime {
	t.Helper()
	r := newRuntime(table)
	require.NoError(t, r.Initialize(nil))
	return r
}

// nextHandle exposes the monotonic counter to tests.
func (d *dispatcher) nextHandle() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.next
}
