package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and ParseFormat() and
// provide specific information about what is wrong with the
// configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers
// to use errors.Is() for programmatic error handling while still
// providing human-readable messages.
var (
	// ErrNoOutputDir is returned when the output directory is empty.
	// The site build has nowhere to write without it.
	ErrNoOutputDir = errors.New("no output directory: provide one with --output or the config file")

	// ErrInvalidPort is returned when the preview port is outside the
	// valid TCP range 1-65535.
	ErrInvalidPort = errors.New("invalid port: must be between 1 and 65535")

	// ErrNoListenAddress is returned when the preview bind address is
	// empty. Use 127.0.0.1 for local-only preview or 0.0.0.0 to expose
	// it deliberately.
	ErrNoListenAddress = errors.New("no listen address: provide one with --listen or the config file")

	// ErrInvalidDebounce is returned when the watch debounce is
	// negative. Use 0 to rebuild immediately on every event.
	ErrInvalidDebounce = errors.New("invalid watch debounce: must be non-negative")

	// ErrUnknownFormat is returned when --format names something other
	// than html, markdown, or json.
	ErrUnknownFormat = errors.New("unknown format: expected html, markdown, or json")
)
