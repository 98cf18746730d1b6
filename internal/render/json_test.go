package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"paperview/internal/model"
)

// TestJSONWriter tests the JSON export of the showcase paper.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact by default with trailing newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewJSONWriter(&buf).Write(model.Showcase())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("output must end with a newline")
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("compact output must be a single line")
		}
	})

	t.Run("round-trips the document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(model.Showcase()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		var decoded model.Paper
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if decoded.Title != model.Showcase().Title {
			t.Errorf("title = %q, expected %q", decoded.Title, model.Showcase().Title)
		}
		if len(decoded.References) != len(model.Showcase().References) {
			t.Errorf("got %d references, expected %d",
				len(decoded.References), len(model.Showcase().References))
		}
		if len(decoded.Results) != model.ResultRowCount {
			t.Errorf("got %d result rows, expected %d", len(decoded.Results), model.ResultRowCount)
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(model.Showcase()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"title\"") {
			t.Error("pretty output must indent fields")
		}
	})

	t.Run("custom indentation", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent("", "\t")).Write(model.Showcase()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.Contains(buf.String(), "\n\t\"title\"") {
			t.Error("custom indent must be used")
		}
	})

	t.Run("version wrapper", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithVersion("1.2.3")).Write(model.Showcase()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		var doc JSONDocument
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if doc.Version != "1.2.3" {
			t.Errorf("version = %q, expected %q", doc.Version, "1.2.3")
		}
		if doc.Paper == nil || doc.Paper.Title != model.Showcase().Title {
			t.Error("wrapper must carry the paper")
		}
	})
}

// TestJSONWriterIdempotent tests byte-identical repeat exports.
func TestJSONWriterIdempotent(t *testing.T) {
	t.Parallel()

	render := func() []byte {
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(model.Showcase()); err != nil {
			t.Fatalf("export failed: %v", err)
		}
		return buf.Bytes()
	}

	first := render()
	for i := 0; i < 8; i++ {
		if !bytes.Equal(first, render()) {
			t.Fatal("JSON export must be byte-identical across renders")
		}
	}
}
