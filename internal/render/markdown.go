package render

import (
	"io"

	"github.com/nao1215/markdown"

	"paperview/internal/model"
)

// MarkdownWriter outputs the paper in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the paper in Markdown format.
func (w *MarkdownWriter) Write(paper *model.Paper) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, paper)
	w.writeAbstract(md, paper)
	w.writeSections(md, paper)
	w.writeFindings(md, paper)
	w.writeResults(md, paper)
	w.writeReferences(md, paper)
	w.writeFooter(md, paper)

	return len(md.String()), md.Build()
}

// writeHeader writes the title block.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, paper *model.Paper) {
	md.H1(paper.Title)
	md.PlainText("")

	if paper.Subtitle != "" {
		md.PlainTextf("*%s*", paper.Subtitle)
		md.PlainText("")
	}

	md.PlainTextf("**%s**", paper.Byline())
	md.PlainText("")
	md.PlainText(paper.Affiliations())
	md.PlainText("")
	md.PlainText(paper.Venue)
	md.PlainText("")
}

// writeAbstract writes the abstract as a quoted block of note.
func (w *MarkdownWriter) writeAbstract(md *markdown.Markdown, paper *model.Paper) {
	md.H2("Abstract")
	md.PlainText("")
	md.Note(paper.Abstract)
	md.PlainText("")
}

// writeSections writes the prose sections.
func (w *MarkdownWriter) writeSections(md *markdown.Markdown, paper *model.Paper) {
	for _, section := range paper.Sections {
		md.H2(section.Heading)
		md.PlainText("")
		for _, paragraph := range section.Paragraphs {
			md.PlainText(paragraph)
			md.PlainText("")
		}
	}
}

// writeFindings writes the finding cards as a table.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, paper *model.Paper) {
	md.H2("Key Findings")
	md.PlainText("")

	rows := make([][]string, len(paper.Findings))
	for i, f := range paper.Findings {
		rows[i] = []string{"**" + f.Value + "**", f.Metric, f.Description, f.Source}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Value", "Metric", "Description", "Source"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeResults writes the fixed benchmark table.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, paper *model.Paper) {
	md.H2("Benchmark Results")
	md.PlainText("")

	rows := make([][]string, len(paper.Results))
	for i, r := range paper.Results {
		rows[i] = []string{r.Name, r.Baseline, r.Tuned, r.Change}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Benchmark", "Baseline", "Tuned", "Change"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeReferences writes the bibliography as a bullet list with the
// citation label leading each entry, keeping the displayed number
// identical to the reference ID.
func (w *MarkdownWriter) writeReferences(md *markdown.Markdown, paper *model.Paper) {
	md.H2("References")
	md.PlainText("")

	entries := make([]string, len(paper.References))
	for i, ref := range paper.References {
		entries[i] = ref.Label() + " " + ref.Citation()
	}
	md.BulletList(entries...)
	md.PlainText("")
}

// writeFooter writes the award line.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, paper *model.Paper) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*%s*", paper.Award)
}
