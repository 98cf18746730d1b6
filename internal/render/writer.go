package render

import (
	"io"

	"paperview/internal/model"
)

// Writer defines the interface for paper output.
// Implementations render the paper in various formats.
//
// Design decision: We use an interface to allow different output
// formats and destinations. This enables writing to files, stdout, or
// in-memory buffers with the same API.
type Writer interface {
	// Write renders the paper to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(paper *model.Paper) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for producing several export formats in one pass.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different from
// io.Writer - we write papers, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the paper through all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(paper *model.Paper) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(paper)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for paper writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
