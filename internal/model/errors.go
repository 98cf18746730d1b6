package model

import "errors"

var (
	// ErrNoTitle is returned when a paper has an empty title.
	// Every artifact derives its document title from this field, so an
	// empty title would produce unlabeled output.
	ErrNoTitle = errors.New("model: paper has no title")

	// ErrNoAuthors is returned when a paper has an empty author list.
	// The byline joins names and affiliations and cannot render from
	// an empty sequence.
	ErrNoAuthors = errors.New("model: paper has no authors")

	// ErrReferenceSequence is returned when reference IDs are not
	// sequential from 1. The displayed citation number equals the ID,
	// so a gap or duplicate would corrupt the bibliography numbering.
	ErrReferenceSequence = errors.New("model: reference IDs are not sequential from 1")

	// ErrFindingCount is returned when the paper does not carry exactly
	// the number of findings the three-column card grid lays out.
	ErrFindingCount = errors.New("model: finding grid requires exactly 3 findings")

	// ErrResultCount is returned when the results table does not carry
	// exactly its fixed number of rows.
	ErrResultCount = errors.New("model: results table requires exactly 4 rows")
)
