package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"paperview/internal/assets"
	"paperview/internal/config"
	"paperview/internal/render"
	"paperview/internal/theme"
)

// Source names for fingerprinted assets. The fingerprint digest is
// inserted before the extension, so "paper.css" becomes something like
// "paper.4f2a91c8.css".
const (
	stylesheetName = "paper.css"
	scriptName     = "reveal.js"
)

// ValidateStep checks the paper and theme before any rendering starts.
//
// Design decision: Validation is a dedicated first step rather than a
// side effect of rendering because:
// 1. It fails the build before any artifact is produced
// 2. Every writer can then assume well-formed input
// 3. The step list documents the invariants a build enforces
type ValidateStep struct{}

// NewValidateStep creates a new validation step.
func NewValidateStep() *ValidateStep {
	return &ValidateStep{}
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do executes the validation step.
func (s *ValidateStep) Do(_ context.Context, build *Build) error {
	if build.Paper == nil {
		return ErrNoPaper
	}
	if err := build.Paper.Validate(); err != nil {
		return fmt.Errorf("failed to validate paper: %w", err)
	}
	if err := build.Theme.Validate(); err != nil {
		return fmt.Errorf("failed to validate theme: %w", err)
	}
	return nil
}

// StylesheetStep renders the theme into a fingerprinted CSS artifact
// and records its path for the page step.
type StylesheetStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// StylesheetStepOption configures a StylesheetStep.
type StylesheetStepOption func(*StylesheetStep)

// WithStylesheetLogger sets a custom logger for the stylesheet step.
func WithStylesheetLogger(logger *slog.Logger) StylesheetStepOption {
	return func(s *StylesheetStep) {
		s.logger = logger
	}
}

// NewStylesheetStep creates a new stylesheet rendering step.
func NewStylesheetStep(opts ...StylesheetStepOption) *StylesheetStep {
	s := &StylesheetStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *StylesheetStep) Name() string {
	return "stylesheet"
}

// Do executes the stylesheet step.
func (s *StylesheetStep) Do(_ context.Context, build *Build) error {
	css, err := theme.Stylesheet(build.Theme)
	if err != nil {
		return fmt.Errorf("failed to render stylesheet: %w", err)
	}

	artifact := path.Join(AssetsDir, assets.Fingerprint(stylesheetName, css))
	build.AddArtifact(artifact, css)
	build.StylesheetPath = artifact

	s.logger.Debug("stylesheet rendered", "path", artifact, "bytes", len(css))
	return nil
}

// ScriptStep copies the scroll reveal script into a fingerprinted
// artifact and records its path for the page step.
type ScriptStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ScriptStepOption configures a ScriptStep.
type ScriptStepOption func(*ScriptStep)

// WithScriptLogger sets a custom logger for the script step.
func WithScriptLogger(logger *slog.Logger) ScriptStepOption {
	return func(s *ScriptStep) {
		s.logger = logger
	}
}

// NewScriptStep creates a new script step.
func NewScriptStep(opts ...ScriptStepOption) *ScriptStep {
	s := &ScriptStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ScriptStep) Name() string {
	return "script"
}

// Do executes the script step.
func (s *ScriptStep) Do(_ context.Context, build *Build) error {
	js := assets.RevealScript()

	artifact := path.Join(AssetsDir, assets.Fingerprint(scriptName, js))
	build.AddArtifact(artifact, js)
	build.ScriptPath = artifact

	s.logger.Debug("script rendered", "path", artifact, "bytes", len(js))
	return nil
}

// PageStep renders the showcase page. When earlier steps produced
// fingerprinted assets the page links to them; otherwise it embeds the
// stylesheet and script inline and stands alone as a single file.
type PageStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// PageStepOption configures a PageStep.
type PageStepOption func(*PageStep)

// WithPageLogger sets a custom logger for the page step.
func WithPageLogger(logger *slog.Logger) PageStepOption {
	return func(s *PageStep) {
		s.logger = logger
	}
}

// NewPageStep creates a new page rendering step.
func NewPageStep(opts ...PageStepOption) *PageStep {
	s := &PageStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *PageStep) Name() string {
	return "page"
}

// Do executes the page step.
func (s *PageStep) Do(_ context.Context, build *Build) error {
	writerOpts := []render.HTMLWriterOption{render.WithTheme(build.Theme)}

	mode := "standalone"
	if build.StylesheetPath != "" && build.ScriptPath != "" {
		// Artifact paths are relative to the page, so they work both
		// from the preview server root and when dist is opened directly.
		writerOpts = append(writerOpts, render.WithLinkedAssets(build.StylesheetPath, build.ScriptPath))
		mode = "linked"
	}

	var buf bytes.Buffer
	if _, err := render.NewHTMLWriter(&buf, writerOpts...).Write(build.Paper); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	build.AddArtifact(PageName, buf.Bytes())
	build.PagePath = PageName

	s.logger.Debug("page rendered", "path", PageName, "mode", mode, "bytes", buf.Len())
	return nil
}

// ExportStep renders the enabled alternate formats of the paper.
//
// Design decision: Formats are rendered concurrently with errgroup
// because they are independent of each other, and the export names are
// not fingerprinted so that downstream tooling can fetch them at stable
// paths.
type ExportStep struct {
	// markdown enables the markdown export.
	markdown bool

	// json enables the JSON export.
	json bool

	// logger for structured logging.
	logger *slog.Logger
}

// ExportStepOption configures an ExportStep.
type ExportStepOption func(*ExportStep)

// WithExportMarkdown enables or disables the markdown export.
func WithExportMarkdown(enabled bool) ExportStepOption {
	return func(s *ExportStep) {
		s.markdown = enabled
	}
}

// WithExportJSON enables or disables the JSON export.
func WithExportJSON(enabled bool) ExportStepOption {
	return func(s *ExportStep) {
		s.json = enabled
	}
}

// WithExportLogger sets a custom logger for the export step.
func WithExportLogger(logger *slog.Logger) ExportStepOption {
	return func(s *ExportStep) {
		s.logger = logger
	}
}

// NewExportStep creates a new export step.
// Without format options the step is a no-op.
func NewExportStep(opts ...ExportStepOption) *ExportStep {
	s := &ExportStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ExportStep) Name() string {
	return "export"
}

// Do executes the export step.
func (s *ExportStep) Do(ctx context.Context, build *Build) error {
	if !s.markdown && !s.json {
		s.logger.Debug("skipping export, no formats enabled")
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)

	if s.markdown {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var buf bytes.Buffer
			if _, err := render.NewMarkdownWriter(&buf).Write(build.Paper); err != nil {
				return fmt.Errorf("failed to render markdown export: %w", err)
			}
			build.AddArtifact(MarkdownName, buf.Bytes())
			return nil
		})
	}

	if s.json {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var buf bytes.Buffer
			if _, err := render.NewJSONWriter(&buf, render.WithPrettyPrint()).Write(build.Paper); err != nil {
				return fmt.Errorf("failed to render JSON export: %w", err)
			}
			build.AddArtifact(JSONName, buf.Bytes())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if s.markdown {
		build.MarkdownPath = MarkdownName
	}
	if s.json {
		build.JSONPath = JSONName
	}

	s.logger.Debug("exports rendered", "markdown", s.markdown, "json", s.json)
	return nil
}

// WriteStep materializes the build artifacts to the output directory.
//
// Design decision: Materialization is a separate final step because:
// 1. The preview server runs the same pipeline without it and serves
//    artifacts from memory
// 2. Nothing touches the output directory until every render succeeded
// 3. Clean-before-write stays in one place
type WriteStep struct {
	// dir is the output directory.
	dir string

	// clean removes the output directory before writing.
	clean bool

	// logger for structured logging.
	logger *slog.Logger
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithWriteClean removes the output directory before writing.
// Stale fingerprinted assets from earlier builds are otherwise left in
// place, which is harmless but accumulates.
func WithWriteClean(clean bool) WriteStepOption {
	return func(s *WriteStep) {
		s.clean = clean
	}
}

// WithWriteLogger sets a custom logger for the write step.
func WithWriteLogger(logger *slog.Logger) WriteStepOption {
	return func(s *WriteStep) {
		s.logger = logger
	}
}

// NewWriteStep creates a step that writes artifacts under dir.
func NewWriteStep(dir string, opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{
		dir:    dir,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do executes the write step.
func (s *WriteStep) Do(ctx context.Context, build *Build) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	paths := build.Paths()
	if len(paths) == 0 {
		return ErrNoArtifacts
	}

	if s.clean && s.dir != "" {
		if err := os.RemoveAll(s.dir); err != nil {
			return fmt.Errorf("failed to clean output directory: %w", err)
		}
	}

	var total int
	for _, p := range paths {
		data, _ := build.Artifact(p)

		full := filepath.Join(s.dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(full, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", p, err)
		}
		total += len(data)
	}

	s.logger.Info("site written",
		"dir", s.dir,
		"files", len(paths),
		"bytes", total,
	)
	return nil
}

// DefaultBuildConfig holds configuration for the default builder.
type DefaultBuildConfig struct {
	// OutputDir is where the write step materializes artifacts.
	OutputDir string

	// Markdown enables the markdown export.
	Markdown bool

	// JSON enables the JSON export.
	JSON bool

	// Clean removes the output directory before writing.
	Clean bool

	// Standalone renders a single self-contained page with the
	// stylesheet and script embedded instead of fingerprinted assets.
	Standalone bool

	// Materialize includes the write step. The preview server disables
	// this and serves the build from memory.
	Materialize bool
}

// DefaultBuildOption configures a DefaultBuildConfig.
type DefaultBuildOption func(*DefaultBuildConfig)

// WithBuildOutputDir sets the output directory for the write step.
func WithBuildOutputDir(dir string) DefaultBuildOption {
	return func(c *DefaultBuildConfig) {
		c.OutputDir = dir
	}
}

// WithBuildMarkdown enables or disables the markdown export.
func WithBuildMarkdown(enabled bool) DefaultBuildOption {
	return func(c *DefaultBuildConfig) {
		c.Markdown = enabled
	}
}

// WithBuildJSON enables or disables the JSON export.
func WithBuildJSON(enabled bool) DefaultBuildOption {
	return func(c *DefaultBuildConfig) {
		c.JSON = enabled
	}
}

// WithBuildClean removes the output directory before writing.
func WithBuildClean(enabled bool) DefaultBuildOption {
	return func(c *DefaultBuildConfig) {
		c.Clean = enabled
	}
}

// WithBuildStandalone renders a single self-contained page instead of
// a page plus fingerprinted assets.
func WithBuildStandalone(enabled bool) DefaultBuildOption {
	return func(c *DefaultBuildConfig) {
		c.Standalone = enabled
	}
}

// WithBuildMaterialize includes or omits the write step.
func WithBuildMaterialize(enabled bool) DefaultBuildOption {
	return func(c *DefaultBuildConfig) {
		c.Materialize = enabled
	}
}

// DefaultBuilder creates a builder with the standard steps configured
// from cfg. This is the pipeline behind both the build command and the
// preview server.
//
// Design decision: We provide a default builder because:
// 1. Most callers want the standard step order
// 2. Reduces boilerplate in CLI
// 3. Guarantees the page step runs after the asset steps it links to
//
// The first variadic parameter accepts builder options (WithLogger, etc).
// The second accepts build config options (WithBuildStandalone, etc).
func DefaultBuilder(cfg *config.Config, builderOpts []Option, configOpts ...DefaultBuildOption) *Builder {
	b := New(builderOpts...)

	// Start from the command-line configuration
	bc := &DefaultBuildConfig{
		OutputDir:   cfg.OutputDir,
		Markdown:    cfg.Markdown,
		JSON:        cfg.JSON,
		Clean:       cfg.Clean,
		Materialize: true,
	}
	for _, opt := range configOpts {
		opt(bc)
	}

	b.AddStep(NewValidateStep())

	// Standalone pages embed their assets, so the asset steps are
	// skipped and the page step falls back to inline mode.
	if !bc.Standalone {
		b.AddSteps(
			NewStylesheetStep(),
			NewScriptStep(),
		)
	}

	b.AddStep(NewPageStep())

	if bc.Markdown || bc.JSON {
		b.AddStep(NewExportStep(
			WithExportMarkdown(bc.Markdown),
			WithExportJSON(bc.JSON),
		))
	}

	if bc.Materialize {
		b.AddStep(NewWriteStep(bc.OutputDir, WithWriteClean(bc.Clean)))
	}

	return b
}
