// Package main provides the entry point for the paperview CLI.
//
// paperview builds the static showcase page for the paper "Adaptive
// Batch Scheduling for Low-Latency Query Pipelines" and serves a live
// preview of it during styling work.
//
// Usage:
//
//	paperview build
//	paperview serve --watch
//
// See --help for all available options.
package main

// main is the entry point for paperview.
func main() {
	Execute()
}
