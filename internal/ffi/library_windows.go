//go:build windows

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

func dlopen(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	if err != nil {
		return 0, fmt.Errorf("ffi: load %s: %w", name, err)
	}
	return uintptr(h), nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func call(sym uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(sym, args...)
	return r1
}
