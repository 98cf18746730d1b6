package theme

import "errors"

var (
	// ErrEmptyFontStack is returned when a theme declares no font
	// families. The generated stylesheet sets the body font from this
	// stack and has no fallback of its own.
	ErrEmptyFontStack = errors.New("theme: font stack is empty")

	// ErrMissingColor is returned when a required color token is
	// absent. The page layout rules reference the required tokens as
	// custom properties, so a missing one leaves parts of the page
	// unstyled.
	ErrMissingColor = errors.New("theme: required color token is missing")

	// ErrInvalidColor is returned when a color value is not a hex
	// color of the form #rgb or #rrggbb.
	ErrInvalidColor = errors.New("theme: color is not a hex value")

	// ErrMissingShadow is returned when a required shadow preset is
	// absent or empty.
	ErrMissingShadow = errors.New("theme: required shadow preset is missing")
)
