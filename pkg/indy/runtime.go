package indy

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sbca/libindy-go/internal/ffi"
	"github.com/sbca/libindy-go/pkg/indy/logging"
)

// Runtime owns the loaded native library, the pending-call registry and
// the one-time initialization state. Construct one with Open and share it;
// all dispatch goes through it. There is no teardown: the native library
// and the logger registration live for the process.
type Runtime struct {
	table commandTable
	d     *dispatcher
	log   logging.Logger

	initMu      sync.Mutex
	initialized atomic.Bool

	logOnce sync.Once
	logCB   uintptr
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger routes wrapper and native log records through l instead of
// the default slog-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.log = l
		}
	}
}

// Open loads the native library by its fixed per-platform filename and
// prepares a runtime. Commands cannot be dispatched until Initialize has
// run.
func Open(opts ...Option) (*Runtime, error) {
	lib, err := ffi.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return newRuntime(&libTable{lib: lib}, opts...), nil
}

func newRuntime(table commandTable, opts ...Option) *Runtime {
	r := &Runtime{table: table, log: logging.New(nil)}
	for _, opt := range opts {
		opt(r)
	}
	r.d = newDispatcher(r.log)
	return r
}

// Initialize performs the one-time native setup: it forwards the
// serialized runtime configuration when one is given, installs the logging
// bridge via indy_set_logger, and marks the runtime ready for dispatch.
// A second call fails with ErrAlreadyInitialized and performs no native
// calls; the logger is never registered twice.
func (r *Runtime) Initialize(cfg *RuntimeConfig) error {
	r.initMu.Lock()
	defer r.initMu.Unlock()
	if r.initialized.Load() {
		return ErrAlreadyInitialized
	}
	ctx := context.Background()

	if cfg != nil {
		raw, err := json.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("indy: encode runtime config: %w", err)
		}
		p := ffi.CString(string(raw))
		if err := r.syncChecked("indy_set_runtime_config", ffi.Ptr(p)); err != nil {
			return err
		}
		runtime.KeepAlive(p)
		r.log.Debug(ctx, "runtime config forwarded", "config", string(raw))
	}

	// Only the log-emit callback is bridged; the enabled-check and flush
	// slots stay empty.
	if err := r.syncChecked("indy_set_logger", 0, 0, r.logCallback(), 0); err != nil {
		return err
	}

	r.initialized.Store(true)
	r.log.Debug(ctx, "libindy initialized")
	return nil
}

// requireInitialized is the precondition for every dispatch operation.
func (r *Runtime) requireInitialized() error {
	if !r.initialized.Load() {
		return ErrNotInitialized
	}
	return nil
}

// syncChecked runs a synchronous command and classifies its immediate
// return code, keeping the invocation and the error-detail fetch on one OS
// thread.
func (r *Runtime) syncChecked(name string, args ...uintptr) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	rc, err := r.syncDispatch(name, args...)
	if err != nil {
		return err
	}
	return r.errorFromCode(int32(uint32(rc)))
}

// libTable adapts internal/ffi.Library to the dispatcher's command table.
type libTable struct {
	lib *ffi.Library
}

func (t *libTable) Resolve(name string) (command, error) {
	sym, err := t.lib.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, name)
	}
	return func(args ...uintptr) uintptr {
		return t.lib.Call(sym, args...)
	}, nil
}

func (t *libTable) Implements(name string) bool {
	return t.lib.Implements(name)
}
