package theme

import (
	"fmt"
	"regexp"
)

// Required token names referenced by the page layout rules.
const (
	// ColorInk is the body text color token.
	ColorInk = "ink"

	// ColorAccent is the link, rule, and award highlight color token.
	ColorAccent = "accent"

	// ShadowCard is the resting shadow of a finding card.
	ShadowCard = "card"

	// ShadowLifted is the hover shadow of a finding card.
	ShadowLifted = "lifted"
)

// hexColorRe matches #rgb and #rrggbb hex colors.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Theme is the styling token set for the showcase page.
// It follows the shape of a utility-framework styling config: content
// paths, named colors, a font stack, and named shadow presets.
type Theme struct {
	// Content lists source paths the original config would hand to a
	// class scanner. paperview performs no scanning; the entries are
	// registered as additional watch targets in serve --watch.
	Content []string `yaml:"content,omitempty"`

	// Colors maps color token names to hex values. The tokens "ink"
	// and "accent" are required; extras become additional custom
	// properties.
	Colors map[string]string `yaml:"colors,omitempty"`

	// FontFamily is the body font stack, most specific first.
	FontFamily []string `yaml:"fontFamily,omitempty"`

	// Shadows maps shadow preset names to CSS shadow values. The
	// presets "card" and "lifted" are required.
	Shadows map[string]string `yaml:"shadows,omitempty"`
}

// Default returns the stock token set the showcase page ships with:
// two named colors, a serif stack, and two shadow presets.
func Default() Theme {
	return Theme{
		Colors: map[string]string{
			ColorInk:    "#1f2933",
			ColorAccent: "#92400e",
		},
		FontFamily: []string{"Georgia", "Cambria", "Times New Roman", "serif"},
		Shadows: map[string]string{
			ShadowCard:   "0 1px 3px rgba(15, 23, 42, 0.12)",
			ShadowLifted: "0 12px 28px rgba(15, 23, 42, 0.18)",
		},
	}
}

// Merge overlays the non-empty fields of other onto a copy of t and
// returns the copy. Token maps merge key by key so a config file can
// override a single color without restating the rest.
func (t Theme) Merge(other Theme) Theme {
	merged := t

	if len(other.Content) > 0 {
		merged.Content = other.Content
	}
	if len(other.FontFamily) > 0 {
		merged.FontFamily = other.FontFamily
	}
	if len(other.Colors) > 0 {
		merged.Colors = copyTokens(t.Colors)
		for name, value := range other.Colors {
			merged.Colors[name] = value
		}
	}
	if len(other.Shadows) > 0 {
		merged.Shadows = copyTokens(t.Shadows)
		for name, value := range other.Shadows {
			merged.Shadows[name] = value
		}
	}

	return merged
}

// copyTokens returns a shallow copy of a token map.
func copyTokens(tokens map[string]string) map[string]string {
	copied := make(map[string]string, len(tokens))
	for name, value := range tokens {
		copied[name] = value
	}
	return copied
}

// Validate checks that the theme carries everything the page layout
// rules reference: a font stack, the required color tokens as hex
// values, and the required shadow presets.
func (t Theme) Validate() error {
	if len(t.FontFamily) == 0 {
		return ErrEmptyFontStack
	}

	for _, name := range []string{ColorAccent, ColorInk} {
		value, ok := t.Colors[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrMissingColor, name)
		}
		if !hexColorRe.MatchString(value) {
			return fmt.Errorf("%w: %q is %q", ErrInvalidColor, name, value)
		}
	}
	for name, value := range t.Colors {
		if !hexColorRe.MatchString(value) {
			return fmt.Errorf("%w: %q is %q", ErrInvalidColor, name, value)
		}
	}

	for _, name := range []string{ShadowCard, ShadowLifted} {
		if t.Shadows[name] == "" {
			return fmt.Errorf("%w: %q", ErrMissingShadow, name)
		}
	}

	return nil
}
