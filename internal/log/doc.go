// Package log provides the logging setup for paperview, built on top of
// the standard slog package.
//
// This package provides:
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//   - Request logging middleware for the preview server
//
// The default level is Warn so normal builds stay quiet; --verbose drops
// the level to Debug, which also makes per-request log lines from the
// preview server visible.
package log
