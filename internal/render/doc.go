// Package render turns the showcase paper into display artifacts.
//
// This package contains the following writers:
//   - HTMLWriter: The styled showcase page itself
//   - MarkdownWriter: A GitHub-flavored Markdown export
//   - JSONWriter: A machine-readable export
//
// All writers implement the Writer interface and share one guarantee:
// rendering is idempotent. The same paper rendered twice produces
// byte-identical output, because nothing here reads the clock, the
// environment, or iterates an unordered map into the artifact.
package render
