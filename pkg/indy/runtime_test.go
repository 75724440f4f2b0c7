package indy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbca/libindy-go/internal/ffi"
)

func TestInitializeForwardsConfig(t *testing.T) {
	table := newFakeTable()
	var gotConfig string
	table.set("indy_set_runtime_config", func(args ...uintptr) uintptr {
		gotConfig = ffi.GoString(args[0])
		return 0
	})

	r := newRuntime(table)
	require.NoError(t, r.Initialize(DefaultRuntimeConfig()))
	require.JSONEq(t, `{"crypto_thread_pool_size":4}`, gotConfig)
	require.Equal(t, 1, table.callCount("indy_set_logger"))
}

func TestInitializeNilConfigSkipsNativeConfig(t *testing.T) {
	table := newFakeTable()
	table.set("indy_set_runtime_config", func(args ...uintptr) uintptr { return 0 })

	r := newRuntime(table)
	require.NoError(t, r.Initialize(nil))
	require.Zero(t, table.callCount("indy_set_runtime_config"))
	require.Equal(t, 1, table.callCount("indy_set_logger"))
}

func TestInitializeTwice(t *testing.T) {
	table := newFakeTable()
	table.set("indy_set_runtime_config", func(args ...uintptr) uintptr { return 0 })

	r := newRuntime(table)
	require.NoError(t, r.Initialize(DefaultRuntimeConfig()))
	require.ErrorIs(t, r.Initialize(DefaultRuntimeConfig()), ErrAlreadyInitialized)

	// No native call is repeated.
	require.Equal(t, 1, table.callCount("indy_set_runtime_config"))
	require.Equal(t, 1, table.callCount("indy_set_logger"))
}

func TestInitializeNativeFailureLeavesRuntimeUninitialized(t *testing.T) {
	table := newFakeTable()
	table.set("indy_set_runtime_config", func(args ...uintptr) uintptr {
		return uintptr(uint32(112))
	})
	table.setCurrentError(`{"message":"bad config"}`)
	table.set("indy_op", func(args ...uintptr) uintptr { return 0 })

	r := newRuntime(table)
	err := r.Initialize(DefaultRuntimeConfig())
	var ie *Error
	require.ErrorAs(t, err, &ie)
	require.Equal(t, CommonInvalidState, ie.Code)
	require.Equal(t, "bad config", ie.Message)

	_, err = r.Dispatch("indy_op")
	require.ErrorIs(t, err, ErrNotInitialized)

	// A failed attempt does not latch; a later retry can succeed.
	table.set("indy_set_runtime_config", func(args ...uintptr) uintptr { return 0 })
	require.NoError(t, r.Initialize(DefaultRuntimeConfig()))

	_, err = r.Dispatch("indy_op")
	require.NoError(t, err)
}

func TestLogCallbackRegisteredOnce(t *testing.T) {
	r := newTestRuntime(t, newFakeTable())
	require.Equal(t, r.logCallback(), r.logCallback())
	require.NotZero(t, r.logCallback())
}
