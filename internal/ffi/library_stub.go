//go:build !darwin && !linux && !freebsd && !windows

package ffi

// Stub implementations for platforms without a dynamic loader. Open fails
// with ErrUnsupportedPlatform before any of these can be reached with a
// live handle.

func dlopen(name string) (uintptr, error) {
	return 0, ErrUnsupportedPlatform
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return 0, ErrSymbolNotFound
}

func call(sym uintptr, args ...uintptr) uintptr {
	return 0
}
