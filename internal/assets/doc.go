// Package assets holds the static files shipped inside the binary and
// the content-digest naming used when they are written to disk.
//
// The only script is the section reveal: a small IntersectionObserver
// hook that fades each section into view on scroll. It is purely
// cosmetic and has no bearing on the rendered content.
package assets
