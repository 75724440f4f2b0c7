package indy

// RuntimeConfig is the one-time native runtime configuration forwarded at
// initialization through indy_set_runtime_config, serialized as a JSON
// record. Zero-valued fields are omitted and keep the library defaults.
type RuntimeConfig struct {
	// CryptoThreadPoolSize sets the size of the native thread pool for
	// crypto operations. The library defaults to 4.
	CryptoThreadPoolSize int `json:"crypto_thread_pool_size,omitempty"`

	// CollectBacktrace asks the library to record a backtrace when an
	// error occurs. Leaving it nil keeps the library default.
	CollectBacktrace *bool `json:"collect_backtrace,omitempty"`
}

// DefaultRuntimeConfig returns a configuration matching the native
// defaults: four crypto worker threads, backtrace collection left to the
// library.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{CryptoThreadPoolSize: 4}
}
