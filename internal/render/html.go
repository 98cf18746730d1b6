package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"paperview/internal/assets"
	"paperview/internal/model"
	"paperview/internal/theme"
)

//go:embed paper.html.tmpl
var paperPage string

// pageTemplate is parsed once at package load. A broken template is a
// programming error, not a runtime condition, so Must is appropriate.
var pageTemplate = template.Must(template.New("paper").Parse(paperPage))

// brand is the fixed text in the sticky header next to the navigation.
const brand = "Research Showcase"

// navFragments are the fragment targets of the header navigation, in
// display order. The rendered sections deliberately carry no matching
// ids: the links are part of the showcase chrome, not working
// navigation, mirroring the page this layout reproduces.
var navFragments = []string{"abstract", "findings", "results", "references"}

// NavItem is one entry of the header navigation.
type NavItem struct {
	// Fragment is the anchor target without the leading "#".
	Fragment string

	// Label is the displayed link text.
	Label string
}

// NavItems returns the header navigation entries. Labels are derived
// from the fragment names by title-casing, so the two stay in sync by
// construction.
func NavItems() []NavItem {
	caser := cases.Title(language.English)
	items := make([]NavItem, len(navFragments))
	for i, fragment := range navFragments {
		items[i] = NavItem{
			Fragment: fragment,
			Label:    caser.String(strings.ReplaceAll(fragment, "-", " ")),
		}
	}
	return items
}

// pageData is the template context for the showcase page.
type pageData struct {
	// Paper is the document being rendered.
	Paper *model.Paper

	// Brand is the fixed header brand text.
	Brand string

	// Nav holds the header navigation entries.
	Nav []NavItem

	// StylesheetHref links the stylesheet in linked-asset mode.
	// When empty, InlineCSS is embedded in a <style> element instead.
	StylesheetHref string

	// ScriptSrc links the reveal script in linked-asset mode.
	// When empty, InlineJS is embedded in a <script> element instead.
	ScriptSrc string

	// InlineCSS is the generated stylesheet for standalone pages.
	InlineCSS template.CSS

	// InlineJS is the reveal script for standalone pages.
	InlineJS template.JS
}

// HTMLWriter renders the styled showcase page.
//
// By default the page is standalone: the stylesheet generated from the
// theme and the reveal script are inlined, so the single file is the
// whole showcase. The site build switches to linked-asset mode and
// writes the stylesheet and script as fingerprinted files instead.
type HTMLWriter struct {
	baseWriter

	// theme is the token set used to generate the inline stylesheet.
	theme theme.Theme

	// stylesheetHref and scriptSrc switch the writer to linked-asset
	// mode when non-empty.
	stylesheetHref string
	scriptSrc      string
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithTheme sets the token set used for the inline stylesheet.
// It has no effect in linked-asset mode.
func WithTheme(th theme.Theme) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.theme = th
	}
}

// WithLinkedAssets switches the writer to linked-asset mode: instead of
// inlining style and script, the page references the given hrefs.
func WithLinkedAssets(stylesheetHref, scriptSrc string) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.stylesheetHref = stylesheetHref
		w.scriptSrc = scriptSrc
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		theme:      theme.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the showcase page.
// The page is rendered to a buffer first so that a template error
// never leaves a partial page on the destination.
func (w *HTMLWriter) Write(paper *model.Paper) (int, error) {
	data := pageData{
		Paper: paper,
		Brand: brand,
		Nav:   NavItems(),
	}

	if w.stylesheetHref != "" {
		data.StylesheetHref = w.stylesheetHref
		data.ScriptSrc = w.scriptSrc
	} else {
		css, err := theme.Stylesheet(w.theme)
		if err != nil {
			return 0, fmt.Errorf("render page style: %w", err)
		}
		data.InlineCSS = template.CSS(css)
		data.InlineJS = template.JS(assets.RevealScript())
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return 0, fmt.Errorf("render page: %w", err)
	}

	return w.output.Write(buf.Bytes())
}
