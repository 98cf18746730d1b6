package site

import (
	"sort"
	"sync"

	"paperview/internal/model"
	"paperview/internal/theme"
)

// Artifact names shared by the build steps and the preview server.
// Rendered assets get a content fingerprint inserted before their
// extension; export names stay stable so downstream tooling can fetch
// them without reading the page first.
const (
	// PageName is the artifact path of the rendered showcase page.
	PageName = "index.html"

	// MarkdownName is the artifact path of the markdown export.
	MarkdownName = "paper.md"

	// JSONName is the artifact path of the JSON export.
	JSONName = "paper.json"

	// AssetsDir is the directory prefix for fingerprinted assets.
	AssetsDir = "assets"
)

// Build accumulates the state of one site build as steps execute.
// Steps read the paper and theme, render artifacts into the build, and
// record the paths later steps and callers need.
//
// Artifact paths always use forward slashes. The write step converts
// them to native paths when materializing to disk.
type Build struct {
	// Paper is the document being rendered.
	Paper *model.Paper

	// Theme provides the design tokens for the stylesheet and page.
	Theme theme.Theme

	// PagePath is the artifact path of the rendered page, set by the
	// page step.
	PagePath string

	// StylesheetPath is the fingerprinted stylesheet path, set by the
	// stylesheet step. Empty means the page embeds its style inline.
	StylesheetPath string

	// ScriptPath is the fingerprinted reveal script path, set by the
	// script step. Empty means the page embeds its script inline.
	ScriptPath string

	// MarkdownPath is the markdown export path, set by the export step
	// when the markdown format is enabled.
	MarkdownPath string

	// JSONPath is the JSON export path, set by the export step when the
	// JSON format is enabled.
	JSONPath string

	// CompletedSteps lists the names of steps that have run, in order.
	CompletedSteps []string

	// Error holds the first step error when execution stops early.
	Error error

	// ErrorMessage mirrors Error as a string for serialized summaries.
	ErrorMessage string

	// Cancelled reports whether the build was interrupted by context
	// cancellation, typically a watch rebuild superseding this one.
	Cancelled bool

	// artifacts maps artifact paths to rendered content.
	// Access is synchronized because the export step renders formats
	// concurrently.
	artifacts map[string][]byte
	mu        sync.Mutex
}

// NewBuild creates a Build for the given paper and theme.
func NewBuild(paper *model.Paper, th theme.Theme) *Build {
	return &Build{
		Paper:     paper,
		Theme:     th,
		artifacts: make(map[string][]byte),
	}
}

// AddArtifact records rendered content under the given path, replacing
// any previous content at that path. Safe for concurrent use.
func (b *Build) AddArtifact(path string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.artifacts[path] = data
}

// Artifact returns the content stored under path and whether it exists.
func (b *Build) Artifact(path string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.artifacts[path]
	return data, ok
}

// Paths returns all artifact paths in sorted order.
func (b *Build) Paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	paths := make([]string, 0, len(b.artifacts))
	for path := range b.artifacts {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of artifacts in the build.
func (b *Build) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.artifacts)
}

// TotalBytes returns the combined size of all artifacts.
func (b *Build) TotalBytes() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	var total int
	for _, data := range b.artifacts {
		total += len(data)
	}
	return total
}
