// Package ffi loads the libindy shared library at runtime and exposes its
// entry points as callable handles. All library loading, symbol resolution
// and raw-pointer handling is isolated here; the rest of the module deals
// in decoded Go values. This package should ONLY be imported by pkg/indy.
package ffi
