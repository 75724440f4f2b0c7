package ffi

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

var (
	// ErrUnsupportedPlatform indicates the running OS has no known libindy
	// shared-library filename.
	ErrUnsupportedPlatform = errors.New("ffi: platform not supported by libindy")

	// ErrSymbolNotFound indicates the loaded library does not export the
	// requested entry point.
	ErrSymbolNotFound = errors.New("ffi: symbol not found")
)

// libraryFile returns the libindy shared-library filename for goos.
func libraryFile(goos string) (string, error) {
	switch goos {
	case "darwin", "ios":
		return "libindy.dylib", nil
	case "linux", "android", "freebsd":
		return "libindy.so", nil
	case "windows":
		return "indy.dll", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}

// Library is an opened handle to the native libindy shared library.
// Resolved symbols are cached. The handle is never closed: the command
// protocol has no teardown, so the library lives for the process.
type Library struct {
	handle uintptr

	mu   sync.Mutex
	syms map[string]uintptr
}

var (
	loadMu sync.Mutex
	loaded *Library
)

// Open loads the native library by its fixed per-platform filename,
// relying on the system loader search path. The load happens at most once:
// after the first success every later call returns the same cached
// Library. A failed load is not cached, so a later call retries.
func Open() (*Library, error) {
	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded != nil {
		return loaded, nil
	}
	name, err := libraryFile(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	h, err := dlopen(name)
	if err != nil {
		return nil, err
	}
	loaded = &Library{handle: h, syms: make(map[string]uintptr)}
	return loaded, nil
}

// Resolve returns the entry point for name, or ErrSymbolNotFound when the
// library does not export it.
func (l *Library) Resolve(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if sym, ok := l.syms[name]; ok {
		return sym, nil
	}
	sym, err := dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, name)
	}
	l.syms[name] = sym
	return sym, nil
}

// Implements reports whether the loaded library exports name. It never
// fails; a missing optional entry point simply returns false.
func (l *Library) Implements(name string) bool {
	_, err := l.Resolve(name)
	return err == nil
}

// Call invokes the entry point sym with the given machine-word arguments
// and returns its immediate integer result.
func (l *Library) Call(sym uintptr, args ...uintptr) uintptr {
	return call(sym, args...)
}
