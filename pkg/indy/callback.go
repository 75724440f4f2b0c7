package indy

import (
	"context"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/sbca/libindy-go/internal/ffi"
)

// Transform adapts decoded callback payload values before they reach the
// caller, for example collapsing a pair of raw values into one
// higher-level value. Values pass through unchanged when no transform is
// given.
type Transform func(values []any) []any

// Callback is a native-callable trampoline for one completion signature.
// Every asynchronous command's callback receives the command handle and a
// response code first, followed by the payload values the shape decodes.
// The native pointer is created on first use and cached for the process
// lifetime: native callbacks are a bounded resource that cannot be
// released, so a Callback should be constructed once per command shape and
// reused across dispatches.
type Callback struct {
	r          *Runtime
	transform  Transform
	makeNative func(*Callback) uintptr

	once   sync.Once
	native uintptr
}

// Native returns the function pointer to pass as the command's callback
// argument.
func (c *Callback) Native() uintptr {
	c.once.Do(func() {
		c.native = c.makeNative(c)
	})
	return c.native
}

// complete applies the transform, classifies the response code and
// resolves the pending call. It runs on the native library's callback
// thread: payload values must already be decoded (native pointers are only
// valid during the callback) and the error detail is fetched here, on the
// same thread that produced the failure.
func (c *Callback) complete(handle uint64, code int32, values ...any) {
	if c.transform != nil {
		values = c.transform(values)
	}
	if err := c.r.errorFromCode(code); err != nil {
		c.r.log.Error(context.Background(), "command failed",
			"handle", handle, "code", code)
		c.r.d.resolve(handle, err)
		return
	}
	c.r.d.resolve(handle, nil, values...)
}

// CallbackNone builds a trampoline for completions carrying no payload:
// (handle, status).
func (r *Runtime) CallbackNone() *Callback {
	return &Callback{r: r, makeNative: func(c *Callback) uintptr {
		return purego.NewCallback(func(h, code uintptr) uintptr {
			c.complete(uint64(h), int32(uint32(code)))
			return 0
		})
	}}
}

// CallbackHandle builds a trampoline for completions carrying one 32-bit
// resource handle, such as an opened wallet or pool handle:
// (handle, status, u32).
func (r *Runtime) CallbackHandle(t Transform) *Callback {
	return &Callback{r: r, transform: t, makeNative: func(c *Callback) uintptr {
		return purego.NewCallback(func(h, code, res uintptr) uintptr {
			c.complete(uint64(h), int32(uint32(code)), uint32(res))
			return 0
		})
	}}
}

// CallbackString builds a trampoline for completions carrying one C
// string: (handle, status, char*).
func (r *Runtime) CallbackString(t Transform) *Callback {
	return &Callback{r: r, transform: t, makeNative: func(c *Callback) uintptr {
		return purego.NewCallback(func(h, code, str uintptr) uintptr {
			c.complete(uint64(h), int32(uint32(code)), ffi.GoString(str))
			return 0
		})
	}}
}

// CallbackStringPair builds a trampoline for completions carrying two C
// strings: (handle, status, char*, char*).
func (r *Runtime) CallbackStringPair(t Transform) *Callback {
	return &Callback{r: r, transform: t, makeNative: func(c *Callback) uintptr {
		return purego.NewCallback(func(h, code, a, b uintptr) uintptr {
			c.complete(uint64(h), int32(uint32(code)), ffi.GoString(a), ffi.GoString(b))
			return 0
		})
	}}
}

// CallbackBytes builds a trampoline for completions carrying a raw buffer
// and its length: (handle, status, uint8*, u32). The buffer is copied
// before the callback returns.
func (r *Runtime) CallbackBytes(t Transform) *Callback {
	return &Callback{r: r, transform: t, makeNative: func(c *Callback) uintptr {
		return purego.NewCallback(func(h, code, data, n uintptr) uintptr {
			c.complete(uint64(h), int32(uint32(code)), ffi.GoBytes(data, int(uint32(n))))
			return 0
		})
	}}
}
