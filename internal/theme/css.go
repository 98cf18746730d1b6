package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Stylesheet renders the theme into the complete page stylesheet: a
// :root block exposing every token as a CSS custom property, followed
// by the fixed layout rules for the showcase page.
//
// Output is deterministic. Token maps are emitted in sorted name order
// so that rebuilding from the same theme is byte-identical.
func Stylesheet(t Theme) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	var b strings.Builder
	writeRoot(&b, t)
	b.WriteString(layoutRules)
	return []byte(b.String()), nil
}

// writeRoot emits the :root custom property block.
func writeRoot(b *strings.Builder, t Theme) {
	b.WriteString(":root {\n")
	for _, name := range sortedNames(t.Colors) {
		fmt.Fprintf(b, "  --color-%s: %s;\n", name, t.Colors[name])
	}
	fmt.Fprintf(b, "  --font-body: %s;\n", fontStack(t.FontFamily))
	for _, name := range sortedNames(t.Shadows) {
		fmt.Fprintf(b, "  --shadow-%s: %s;\n", name, t.Shadows[name])
	}
	b.WriteString("}\n")
}

// sortedNames returns the keys of a token map in sorted order.
func sortedNames(tokens map[string]string) []string {
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fontStack joins font family names into a CSS font-family value,
// quoting names that contain spaces.
func fontStack(families []string) string {
	quoted := make([]string, len(families))
	for i, family := range families {
		if strings.Contains(family, " ") {
			quoted[i] = `"` + family + `"`
		} else {
			quoted[i] = family
		}
	}
	return strings.Join(quoted, ", ")
}

// layoutRules is the fixed portion of the stylesheet. It references the
// required tokens through their custom properties, so the same rules
// apply whichever values the theme sets.
const layoutRules = `
* {
  box-sizing: border-box;
}

body {
  margin: 0;
  color: var(--color-ink);
  background: #faf8f4;
  font-family: var(--font-body);
  line-height: 1.6;
}

.page {
  max-width: 880px;
  margin: 0 auto;
  padding: 0 24px 64px;
}

.site-header {
  position: sticky;
  top: 0;
  z-index: 10;
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 14px 24px;
  background: rgba(250, 248, 244, 0.95);
  border-bottom: 1px solid rgba(31, 41, 51, 0.12);
}

.site-header .brand {
  font-weight: 700;
  letter-spacing: 0.02em;
}

.site-nav a {
  margin-left: 18px;
  color: var(--color-ink);
  text-decoration: none;
  font-size: 0.92rem;
}

.site-nav a:hover {
  color: var(--color-accent);
}

.site-nav a.download-link {
  padding: 6px 14px;
  border: 1px solid var(--color-accent);
  border-radius: 4px;
  color: var(--color-accent);
}

.title-block {
  padding: 56px 0 8px;
  text-align: center;
}

.title-block h1 {
  margin: 0 0 8px;
  font-size: 2rem;
  line-height: 1.25;
}

.title-block .subtitle {
  margin: 0 0 20px;
  font-size: 1.15rem;
  font-style: italic;
  opacity: 0.85;
}

.title-block .byline {
  margin: 0 0 4px;
  font-weight: 600;
}

.title-block .affiliations {
  margin: 0 0 4px;
  font-size: 0.92rem;
  opacity: 0.8;
}

.title-block .venue {
  margin: 0;
  font-size: 0.88rem;
  color: var(--color-accent);
}

.paper-section {
  margin: 40px 0;
  opacity: 0;
  transform: translateY(16px);
  transition: opacity 0.6s ease, transform 0.6s ease;
}

.paper-section.is-visible {
  opacity: 1;
  transform: none;
}

.paper-section h2 {
  margin: 0 0 14px;
  font-size: 1.3rem;
  border-bottom: 2px solid var(--color-accent);
  padding-bottom: 6px;
}

.abstract {
  padding: 20px 24px;
  background: #ffffff;
  border-left: 4px solid var(--color-accent);
  box-shadow: var(--shadow-card);
}

.finding-grid {
  display: grid;
  grid-template-columns: repeat(3, 1fr);
  gap: 20px;
}

.finding-card {
  padding: 20px;
  background: #ffffff;
  border-radius: 6px;
  box-shadow: var(--shadow-card);
  transition: box-shadow 0.25s ease;
}

.finding-card:hover {
  box-shadow: var(--shadow-lifted);
}

.finding-card .finding-value {
  display: block;
  font-size: 2.1rem;
  font-weight: 700;
  color: var(--color-accent);
}

.finding-card .finding-metric {
  display: block;
  margin: 4px 0 10px;
  font-weight: 600;
}

.finding-card .finding-source {
  font-size: 0.85rem;
  opacity: 0.7;
}

.results-table {
  width: 100%;
  border-collapse: collapse;
  background: #ffffff;
  box-shadow: var(--shadow-card);
}

.results-table th,
.results-table td {
  padding: 10px 14px;
  text-align: left;
  border-bottom: 1px solid rgba(31, 41, 51, 0.12);
}

.results-table thead th {
  background: var(--color-ink);
  color: #faf8f4;
  font-weight: 600;
}

.reference-list {
  margin: 0;
  padding: 0;
  list-style: none;
}

.reference-list li {
  margin: 0 0 10px;
  padding-left: 44px;
  text-indent: -44px;
}

.reference-list .ref-label {
  display: inline-block;
  width: 38px;
  text-indent: 0;
  font-weight: 600;
  color: var(--color-accent);
}

.site-footer {
  margin-top: 56px;
  padding-top: 20px;
  border-top: 1px solid rgba(31, 41, 51, 0.12);
  font-size: 0.9rem;
  text-align: center;
}

.site-footer .award {
  color: var(--color-accent);
  font-weight: 600;
}

@media (max-width: 860px) {
  .finding-grid {
    grid-template-columns: 1fr;
  }

  .site-nav a {
    margin-left: 10px;
  }
}

@media (prefers-reduced-motion: reduce) {
  .paper-section {
    opacity: 1;
    transform: none;
    transition: none;
  }
}
`
