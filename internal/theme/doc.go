// Package theme holds the styling token set for the showcase page and
// turns it into the page stylesheet.
//
// The token set mirrors the shape of a utility-framework styling config:
// content paths, named colors, a font stack, and named shadow presets.
// paperview does not implement a utility-class scanner; the content
// paths are consumed only as additional watch targets by the preview
// server, and the tokens feed a generated stylesheet instead of a
// class-scanning build.
//
// Design decision: the two color names ("ink", "accent") and the two
// shadow names ("card", "lifted") are part of the contract, because the
// page layout rules reference them as CSS custom properties. Extra
// tokens are allowed and emitted alongside, but the required four must
// be present for the page to style correctly.
package theme
