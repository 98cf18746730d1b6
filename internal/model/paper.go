package model

import "fmt"

// FindingCount is the number of cards the three-column finding grid lays out.
const FindingCount = 3

// ResultRowCount is the number of fixed rows in the results table.
const ResultRowCount = 4

// Section is one prose section of the paper.
type Section struct {
	// Heading is the section heading, e.g. "1. Introduction".
	Heading string `json:"heading"`

	// Paragraphs is the section body, one entry per paragraph.
	Paragraphs []string `json:"paragraphs"`
}

// Paper is the complete showcase document.
// It aggregates every record the page renders: byline, abstract, prose
// sections, the finding grid, the results table, and the bibliography.
//
// Design decision: Paper is a plain aggregate with no behavior beyond
// Validate. Rendering lives in the render package so that the same
// document can feed the HTML page, the Markdown export, and the JSON
// export without the model knowing about any of them.
type Paper struct {
	// Title is the paper title shown in the title block and the
	// document <title>.
	Title string `json:"title"`

	// Subtitle is the secondary title line, if any.
	Subtitle string `json:"subtitle,omitempty"`

	// Authors is the ordered contributor list for the byline.
	Authors []Author `json:"authors"`

	// Abstract is the abstract paragraph.
	Abstract string `json:"abstract"`

	// Sections holds the prose sections in display order:
	// introduction, methodology, results, discussion.
	Sections []Section `json:"sections"`

	// Findings holds the summary cards in display order.
	Findings []Finding `json:"findings"`

	// Results holds the fixed benchmark table rows in display order.
	Results []BenchmarkRow `json:"results"`

	// References holds the bibliography in ascending ID order.
	References []Reference `json:"references"`

	// Venue is the publication venue line shown in the title block.
	Venue string `json:"venue"`

	// Award is the literal award/citation text shown in the footer.
	Award string `json:"award"`

	// DownloadLabel is the label of the header download action. The
	// action itself is a no-op target; there is no file behind it.
	DownloadLabel string `json:"download_label"`
}

// Byline returns the author names joined with ", ".
func (p *Paper) Byline() string {
	return JoinNames(p.Authors)
}

// Affiliations returns the author affiliations joined with "; ".
func (p *Paper) Affiliations() string {
	return JoinAffiliations(p.Authors)
}

// Validate checks the structural invariants every writer relies on.
// It is called once by the build pipeline before any artifact is
// rendered; the showcase document always passes.
func (p *Paper) Validate() error {
	if p.Title == "" {
		return ErrNoTitle
	}
	if len(p.Authors) == 0 {
		return ErrNoAuthors
	}
	for i, ref := range p.References {
		if ref.ID != i+1 {
			return fmt.Errorf("%w: position %d has ID %d", ErrReferenceSequence, i, ref.ID)
		}
	}
	if len(p.Findings) != FindingCount {
		return fmt.Errorf("%w: got %d", ErrFindingCount, len(p.Findings))
	}
	if len(p.Results) != ResultRowCount {
		return fmt.Errorf("%w: got %d", ErrResultCount, len(p.Results))
	}
	return nil
}
