package ffi

import "unsafe"

// CString returns a NUL-terminated copy of s for passing to a native entry
// point. The caller must keep the returned pointer reachable
// (runtime.KeepAlive) until the native call has returned.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// Ptr encodes a byte pointer as a machine-word argument.
func Ptr(p *byte) uintptr {
	return uintptr(unsafe.Pointer(p))
}

// GoString copies the NUL-terminated C string at ptr into a Go string.
// ptr is only valid for the duration of the native callback or call that
// produced it, so the copy must happen before returning to native code.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(ptr + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
}

// GoBytes copies n bytes at ptr into a fresh Go slice.
func GoBytes(ptr uintptr, n int) []byte {
	if ptr == 0 || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n))
	return out
}
