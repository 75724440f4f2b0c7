package indy

import (
	"encoding/json"
	"errors"
	"fmt"
	"unsafe"

	"github.com/sbca/libindy-go/internal/ffi"
)

var (
	// ErrLoadFailed indicates the native library could not be located or
	// loaded, or the running platform is not supported.
	ErrLoadFailed = errors.New("indy: native library load failed")

	// ErrNotInitialized indicates a dispatch was attempted before
	// Runtime.Initialize succeeded.
	ErrNotInitialized = errors.New("indy: runtime not initialized")

	// ErrAlreadyInitialized indicates Runtime.Initialize was called twice.
	ErrAlreadyInitialized = errors.New("indy: runtime already initialized")

	// ErrNotImplemented indicates the loaded library does not export the
	// named command, either a version mismatch or an optional-feature probe.
	ErrNotImplemented = errors.New("indy: command not implemented")
)

// Error is a classified failure reported by the native library. It is the
// normal business-error path: it travels through the same channel as
// successful results and is always surfaced to the caller.
type Error struct {
	Code      Code
	Message   string
	Backtrace string
}

func (e *Error) Error() string {
	return fmt.Sprintf("indy: %s (code %d): %s", e.Code, int32(e.Code), e.Message)
}

// UnknownCodeError reports a native status outside the known enumeration.
// It signals ABI drift between the wrapper and the installed library; the
// raw code is preserved so callers can decide whether to treat it as fatal.
type UnknownCodeError struct {
	Code int32
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("indy: unknown native response code %d", e.Code)
}

// errorDetail mirrors the JSON blob returned by indy_get_current_error.
type errorDetail struct {
	Message   string `json:"message"`
	Backtrace string `json:"backtrace"`
}

// errorFromCode classifies a native response code. Success yields nil. For
// a known failure code the current-error detail is fetched from native
// thread-local state, so this must run on the OS thread that produced the
// failure, before any other native call on that thread. When the detail
// blob is unavailable or malformed the code name stands in for the message.
func (r *Runtime) errorFromCode(code int32) error {
	if code == int32(Success) {
		return nil
	}
	c := Code(code)
	if !c.Known() {
		return &UnknownCodeError{Code: code}
	}

	e := &Error{Code: c, Message: c.String()}
	var blob uintptr
	// The entry point is void; only the out-parameter carries the result.
	_, err := r.syncDispatch("indy_get_current_error", uintptr(unsafe.Pointer(&blob)))
	if err == nil && blob != 0 {
		var detail errorDetail
		if jsonErr := json.Unmarshal([]byte(ffi.GoString(blob)), &detail); jsonErr == nil {
			if detail.Message != "" {
				e.Message = detail.Message
			}
			e.Backtrace = detail.Backtrace
		}
	}
	return e
}
