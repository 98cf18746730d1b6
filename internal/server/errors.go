package server

import "errors"

// Server operation errors
var (
	// ErrShutdownFailed is returned when graceful shutdown could not
	// drain in-flight requests within the shutdown timeout.
	ErrShutdownFailed = errors.New("preview server shutdown failed")

	// ErrNoWatchTargets is returned when watch mode is started without
	// any paths to watch.
	ErrNoWatchTargets = errors.New("no watch targets configured")
)
