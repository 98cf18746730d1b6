package inspect

import "strings"

// ElementsWithClass returns the elements carrying the given class name,
// in document order. The class attribute is split on whitespace, so an
// element with class "finding-card wide" matches "finding-card".
func (o *Outline) ElementsWithClass(name string) []Element {
	var matched []Element
	for _, el := range o.Elements {
		if hasClass(el.Class, name) {
			matched = append(matched, el)
		}
	}
	return matched
}

// TextsOfClass returns the collapsed text of every element carrying the
// given class name, in document order.
func (o *Outline) TextsOfClass(name string) []string {
	elements := o.ElementsWithClass(name)
	texts := make([]string, len(elements))
	for i, el := range elements {
		texts[i] = el.Text
	}
	return texts
}

// HasID reports whether any element in the document carries the given id.
func (o *Outline) HasID(id string) bool {
	for _, existing := range o.IDs {
		if existing == id {
			return true
		}
	}
	return false
}

// UnresolvedFragments returns the fragment names of anchors that point
// at "#name" targets with no matching element id, in document order.
// Bare "#" hrefs are no-op targets, not fragment references, and are
// excluded.
func (o *Outline) UnresolvedFragments() []string {
	var unresolved []string
	for _, a := range o.Anchors {
		if !strings.HasPrefix(a.Href, "#") {
			continue
		}
		fragment := strings.TrimPrefix(a.Href, "#")
		if fragment == "" {
			continue
		}
		if !o.HasID(fragment) {
			unresolved = append(unresolved, fragment)
		}
	}
	return unresolved
}

// TableWithClass returns the first table carrying the given class name,
// or nil when the document has none.
func (o *Outline) TableWithClass(name string) *Table {
	for i := range o.Tables {
		if hasClass(o.Tables[i].Class, name) {
			return &o.Tables[i]
		}
	}
	return nil
}

// hasClass reports whether a raw class attribute contains the given
// class name.
func hasClass(attr, name string) bool {
	for _, class := range strings.Fields(attr) {
		if class == name {
			return true
		}
	}
	return false
}
