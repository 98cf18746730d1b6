package model

import (
	"fmt"
	"strings"
)

// Reference is a single citation record in the bibliography.
// References are hard-coded, ordered, and identified by a sequential ID
// starting at 1. The displayed citation number is always the ID itself,
// never a derived index.
type Reference struct {
	// ID is the unique, sequential citation number starting at 1.
	ID int `json:"id"`

	// Authors is the pre-formatted author string, e.g. "Vasquez, E., Okonkwo, D.".
	Authors string `json:"authors"`

	// Title is the title of the cited work.
	Title string `json:"title"`

	// Journal is the venue the work appeared in.
	Journal string `json:"journal"`

	// Year is the publication year. Kept as text because some venues
	// cite ranges or "in press" markers.
	Year string `json:"year"`

	// Volume is the journal volume, if any.
	Volume string `json:"volume,omitempty"`

	// Issue is the journal issue, if any.
	Issue string `json:"issue,omitempty"`

	// Pages is the page range, if any, e.g. "211-226".
	Pages string `json:"pages,omitempty"`
}

// Label returns the bracketed citation marker for this reference, e.g. "[3]".
func (r Reference) Label() string {
	return fmt.Sprintf("[%d]", r.ID)
}

// Citation returns the reference formatted as a single citation line.
// Optional fields (volume, issue, pages) are appended only when present,
// so entries without them still read naturally.
func (r Reference) Citation() string {
	var b strings.Builder
	b.WriteString(r.Authors)
	b.WriteString(" ")
	b.WriteString(r.Title)
	b.WriteString(". ")
	b.WriteString(r.Journal)

	if r.Volume != "" {
		b.WriteString(", vol. ")
		b.WriteString(r.Volume)
	}
	if r.Issue != "" {
		b.WriteString(", no. ")
		b.WriteString(r.Issue)
	}
	if r.Pages != "" {
		b.WriteString(", pp. ")
		b.WriteString(r.Pages)
	}

	b.WriteString(", ")
	b.WriteString(r.Year)
	b.WriteString(".")
	return b.String()
}
