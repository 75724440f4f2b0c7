// Package logging provides a minimal logging facade for the libindy
// wrapper.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality plus a Trace level below debug, matching the five native
// log severities. Applications that want the native library's log stream
// routed into their own stack implement Logger and pass it to indy.Open
// via indy.WithLogger.
//
// To see trace records with the default slog backend, configure a handler
// that admits logging.LevelTrace:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: logging.LevelTrace,
//	})
//	rt, err := indy.Open(indy.WithLogger(logging.New(slog.New(handler))))
package logging
