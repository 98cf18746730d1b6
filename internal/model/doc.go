// Package model defines the core data structures used throughout paperview.
//
// This package contains the following main types:
//   - Paper: The complete showcase document rendered by every writer
//   - Reference: A literal citation record displayed in the bibliography
//   - Finding: A literal headline statistic displayed as a summary card
//   - Author: A literal contributor record displayed in the byline
//   - BenchmarkRow: One fixed row of the results table
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (render, site, inspect) need to use these
// types, so centralizing them prevents import cycles.
//
// All content is constructed once at package load by Showcase and is
// read-only for the lifetime of the process. Nothing here is fetched,
// parsed, or persisted.
package model
