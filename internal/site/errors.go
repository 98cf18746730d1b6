package site

import "errors"

var (
	// ErrNoPaper is returned when a build is executed without a paper.
	ErrNoPaper = errors.New("site: build has no paper to render")

	// ErrNoArtifacts is returned when the write step runs before any
	// rendering step produced output.
	ErrNoArtifacts = errors.New("site: no artifacts to write")
)
