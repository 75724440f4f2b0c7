package indy

import (
	"context"
	"strings"

	"github.com/ebitengine/purego"

	"github.com/sbca/libindy-go/internal/ffi"
)

// logCallback returns the standing log-emit trampoline registered with
// indy_set_logger. Unlike command callbacks it never resolves a pending
// call; it stays installed for the process lifetime. The native signature
// is (context, level 1-5, target, message, module path, file, line).
func (r *Runtime) logCallback() uintptr {
	r.logOnce.Do(func() {
		r.logCB = purego.NewCallback(func(_, level, target, message, _, file, line uintptr) uintptr {
			r.emitNativeLog(int(level), ffi.GoString(target), ffi.GoString(message),
				ffi.GoString(file), int(line))
			return 0
		})
	})
	return r.logCB
}

// emitNativeLog routes one native log record through the facade under the
// hierarchical native.<target> namespace. Native targets use :: as a path
// separator; severity 5 is finer than debug and maps to Trace.
func (r *Runtime) emitNativeLog(level int, target, message, file string, line int) {
	log := r.log.With("target", "native."+strings.ReplaceAll(target, "::", "."))
	ctx := context.Background()
	args := []any{"file", file, "line", line}
	switch level {
	case 1:
		log.Error(ctx, message, args...)
	case 2:
		log.Warn(ctx, message, args...)
	case 3:
		log.Info(ctx, message, args...)
	case 4:
		log.Debug(ctx, message, args...)
	default:
		log.Trace(ctx, message, args...)
	}
}
