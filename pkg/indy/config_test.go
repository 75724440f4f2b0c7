package indy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuntimeConfigJSON(t *testing.T) {
	raw, err := json.Marshal(DefaultRuntimeConfig())
	require.NoError(t, err)
	require.JSONEq(t, `{"crypto_thread_pool_size":4}`, string(raw))

	collect := false
	raw, err = json.Marshal(&RuntimeConfig{CryptoThreadPoolSize: 8, CollectBacktrace: &collect})
	require.NoError(t, err)
	require.JSONEq(t, `{"crypto_thread_pool_size":8,"collect_backtrace":false}`, string(raw))

	// Zero values stay with the library defaults.
	raw, err = json.Marshal(&RuntimeConfig{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(raw))
}
