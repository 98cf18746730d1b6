package theme

import (
	"bytes"
	"strings"
	"testing"
)

// TestStylesheet tests stylesheet generation from the default theme.
func TestStylesheet(t *testing.T) {
	t.Parallel()

	css, err := Stylesheet(Default())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	t.Run("exposes every token as a custom property", func(t *testing.T) {
		t.Parallel()

		for _, want := range []string{
			"--color-accent: #92400e;",
			"--color-ink: #1f2933;",
			"--shadow-card: 0 1px 3px rgba(15, 23, 42, 0.12);",
			"--shadow-lifted: 0 12px 28px rgba(15, 23, 42, 0.18);",
		} {
			if !strings.Contains(string(css), want) {
				t.Errorf("stylesheet is missing %q", want)
			}
		}
	})

	t.Run("quotes font names containing spaces", func(t *testing.T) {
		t.Parallel()

		want := `--font-body: Georgia, Cambria, "Times New Roman", serif;`
		if !strings.Contains(string(css), want) {
			t.Errorf("stylesheet is missing %q", want)
		}
	})

	t.Run("emits color tokens in sorted name order", func(t *testing.T) {
		t.Parallel()

		accent := strings.Index(string(css), "--color-accent")
		ink := strings.Index(string(css), "--color-ink")
		if accent == -1 || ink == -1 || accent > ink {
			t.Error("expected --color-accent before --color-ink")
		}
	})

	t.Run("carries the page layout rules", func(t *testing.T) {
		t.Parallel()

		for _, want := range []string{
			".site-header",
			"position: sticky",
			".finding-grid",
			"repeat(3, 1fr)",
			".paper-section.is-visible",
			".results-table",
			".reference-list",
			"prefers-reduced-motion",
		} {
			if !strings.Contains(string(css), want) {
				t.Errorf("stylesheet is missing %q", want)
			}
		}
	})
}

// TestStylesheetDeterministic tests that repeated generation from the
// same theme is byte-identical, including extra tokens held in maps.
func TestStylesheetDeterministic(t *testing.T) {
	t.Parallel()

	th := Default()
	th.Colors["paper"] = "#faf8f4"
	th.Colors["rule"] = "#d6cfc2"
	th.Shadows["inset"] = "inset 0 1px 2px rgba(15, 23, 42, 0.08)"

	first, err := Stylesheet(th)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for i := 0; i < 16; i++ {
		again, err := Stylesheet(th)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("stylesheet output must be byte-identical across renders")
		}
	}
}

// TestStylesheetInvalidTheme tests that generation refuses an invalid
// token set.
func TestStylesheetInvalidTheme(t *testing.T) {
	t.Parallel()

	th := Default()
	th.FontFamily = nil

	if _, err := Stylesheet(th); err == nil {
		t.Error("expected an error for an invalid theme")
	}
}
