// Package inspect extracts a structural outline from a rendered page.
//
// The outline is the basis for two things: the summary the build
// command prints after writing artifacts, and structural assertions in
// rendering tests (card counts, table rows, citation order) that would
// be brittle as raw substring checks.
//
// Design decision: We use golang.org/x/net/html rather than regex
// because it provides a proper DOM walk, handles attribute ordering and
// whitespace for us, and keeps assertions about structure independent
// of how the template formats its output.
package inspect
