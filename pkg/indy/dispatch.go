package indy

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sbca/libindy-go/pkg/indy/logging"
)

// command is a resolved native entry point.
type command func(args ...uintptr) uintptr

// commandTable resolves named native commands. The production
// implementation wraps internal/ffi; tests substitute an in-memory table.
type commandTable interface {
	Resolve(name string) (command, error)
	Implements(name string) bool
}

type outcome struct {
	values []any
	err    error
}

// pendingCall tracks one outstanding asynchronous command. The done
// channel is buffered so the single resolution never blocks the native
// callback thread.
type pendingCall struct {
	done      chan outcome
	cancelled atomic.Bool
}

// dispatcher owns the pending-call registry. The map and the monotonic
// handle counter are the only shared mutable state in the module; foreign
// callback threads reach them exclusively through resolve, under the mutex.
type dispatcher struct {
	log logging.Logger

	mu      sync.Mutex
	next    uint64
	pending map[uint64]*pendingCall
}

func newDispatcher(log logging.Logger) *dispatcher {
	return &dispatcher{log: log, pending: make(map[uint64]*pendingCall)}
}

// register allocates the next command handle and installs its pending
// slot. Registration happens before the native call is made so a callback
// firing immediately always finds its entry.
func (d *dispatcher) register() (uint64, *pendingCall) {
	p := &pendingCall{done: make(chan outcome, 1)}
	d.mu.Lock()
	h := d.next
	d.next++
	d.pending[h] = p
	d.mu.Unlock()
	return h, p
}

func (d *dispatcher) remove(h uint64) (*pendingCall, bool) {
	d.mu.Lock()
	p, ok := d.pending[h]
	delete(d.pending, h)
	d.mu.Unlock()
	return p, ok
}

// resolve delivers the single resolution for handle h. A handle with no
// pending slot means a double delivery or an unregistered handle; that is
// a broken invariant, not a native business error, and it panics. Results
// for cancelled calls are discarded after the slot is removed, so a late
// callback still drains without leaking the entry.
func (d *dispatcher) resolve(h uint64, err error, values ...any) {
	p, ok := d.remove(h)
	if !ok {
		panic(fmt.Sprintf("indy: resolution of unknown command handle %d", h))
	}
	if p.cancelled.Load() {
		d.log.Debug(context.Background(), "discarding result of cancelled command", "handle", h)
		return
	}
	p.done <- outcome{values: values, err: err}
}

// outstanding returns the number of pending calls.
func (d *dispatcher) outstanding() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Call is the future for one dispatched command.
type Call struct {
	handle uint64
	p      *pendingCall
}

// Handle returns the correlation handle passed to the native command.
func (c *Call) Handle() uint64 {
	return c.handle
}

// Await blocks until the native callback, or the synchronous error path at
// dispatch time, resolves the call, or until ctx is done. On success it
// returns the callback's payload values in order; an empty payload yields
// nil values and a nil error. When ctx expires first the call is marked
// cancelled: the eventual callback is still accepted, to drain native
// state, but its result is discarded.
func (c *Call) Await(ctx context.Context) ([]any, error) {
	select {
	case out := <-c.p.done:
		return out.values, out.err
	case <-ctx.Done():
		c.p.cancelled.Store(true)
		return nil, ctx.Err()
	}
}

// Dispatch issues the named asynchronous command. The native entry point
// receives the freshly allocated command handle as its first argument
// followed by args, which must include the Native pointer of a Callback
// matching the command's completion signature. The returned Call resolves
// when the callback fires, or immediately when the native call reports a
// failure through its immediate return code (some failures are reported
// synchronously and never produce a callback).
func (r *Runtime) Dispatch(name string, args ...uintptr) (*Call, error) {
	if err := r.requireInitialized(); err != nil {
		return nil, err
	}
	cmd, err := r.table.Resolve(name)
	if err != nil {
		return nil, err
	}

	h, p := r.d.register()
	call := &Call{handle: h, p: p}

	// Pin the OS thread so a synchronous failure can be classified against
	// the native thread-local error state of the thread that produced it.
	runtime.LockOSThread()
	rc := cmd(append([]uintptr{uintptr(h)}, args...)...)
	syncErr := r.errorFromCode(int32(uint32(rc)))
	runtime.UnlockOSThread()

	if syncErr != nil {
		r.log.Error(context.Background(), "command failed synchronously",
			"command", name, "handle", h, "code", int32(uint32(rc)))
		r.d.resolve(h, syncErr)
	}
	return call, nil
}

// SyncDispatch invokes the named entry point directly and returns its raw
// immediate result, bypassing handle and callback machinery. It is only
// valid for native operations documented as synchronous.
func (r *Runtime) SyncDispatch(name string, args ...uintptr) (uintptr, error) {
	if err := r.requireInitialized(); err != nil {
		return 0, err
	}
	return r.syncDispatch(name, args...)
}

// syncDispatch is SyncDispatch without the initialization precondition;
// the initialization sequence itself and the error-detail fetch depend on
// it.
func (r *Runtime) syncDispatch(name string, args ...uintptr) (uintptr, error) {
	cmd, err := r.table.Resolve(name)
	if err != nil {
		return 0, err
	}
	return cmd(args...), nil
}

// Implements reports whether the loaded native library exports the named
// command. It never fails; probing for optional features simply returns
// false.
func (r *Runtime) Implements(name string) bool {
	return r.table.Implements(name)
}
