package indy

import "github.com/sbca/libindy-go/internal/ffi"

// Argument helpers for encoding command parameters. Native commands take
// machine-word arguments; these helpers produce them without exposing the
// internal FFI package. Pointer-backed arguments must stay reachable
// (runtime.KeepAlive) until the dispatching call has returned; the native
// library copies its inputs during the synchronous part of the call.

// CString returns a NUL-terminated copy of s for use as a command
// argument.
func CString(s string) *byte {
	return ffi.CString(s)
}

// PtrArg encodes a byte pointer as a command argument.
func PtrArg(p *byte) uintptr {
	return ffi.Ptr(p)
}

// IntArg encodes a signed 32-bit value as a command argument.
func IntArg(v int32) uintptr {
	return uintptr(uint32(v))
}

// Uint32Arg encodes an unsigned 32-bit value, such as a wallet or pool
// handle, as a command argument.
func Uint32Arg(v uint32) uintptr {
	return uintptr(v)
}

// BoolArg encodes a native boolean as a command argument.
func BoolArg(v bool) uintptr {
	if v {
		return 1
	}
	return 0
}
