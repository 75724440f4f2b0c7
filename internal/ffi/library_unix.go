//go:build darwin || linux || freebsd

package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func dlopen(name string) (uintptr, error) {
	h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("ffi: load %s: %w", name, err)
	}
	return h, nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, err
	}
	return sym, nil
}

func call(sym uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(sym, args...)
	return r1
}
