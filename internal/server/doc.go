// Package server provides the local preview server and the file
// watcher behind watch mode.
//
// The server holds one complete build in memory and serves artifacts
// straight from it, so a preview never depends on the state of the
// output directory. Watch mode rebuilds when a watched path changes and
// swaps the new build in atomically; when a rebuild fails, the last
// good build stays on screen.
package server
