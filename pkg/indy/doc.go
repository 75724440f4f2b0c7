// Package indy bridges Go callers to the libindy native library's
// asynchronous command protocol.
//
// Every asynchronous native command takes a caller-chosen correlation
// handle, returns an immediate status code, and later reports its result
// through a callback that echoes the handle, possibly on a thread owned by
// the native library. This package turns that protocol into per-call
// futures: Dispatch allocates a handle, registers a pending slot, invokes
// the entry point and returns a Call whose Await delivers exactly one
// resolution, either the payload values of a successful callback or a
// classified error.
//
// A Runtime must be opened and initialized before dispatching:
//
//	rt, err := indy.Open()
//	if err != nil {
//	    // library missing or platform unsupported
//	}
//	if err := rt.Initialize(indy.DefaultRuntimeConfig()); err != nil {
//	    // ...
//	}
//
//	cb := rt.CallbackString(nil)
//	cfg := indy.CString(`{"id":"wallet"}`)
//	call, err := rt.Dispatch("indy_create_wallet", indy.PtrArg(cfg), cb.Native())
//	runtime.KeepAlive(cfg)
//	if err != nil {
//	    // NotImplemented or NotInitialized; no handle was allocated
//	}
//	values, err := call.Await(ctx)
//
// The package manages the call/callback/result lifecycle only; it knows
// nothing about the semantics of individual commands.
package indy
