package inspect

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Outline contains the structure extracted from a rendered page.
//
// Design decision: We return a comprehensive outline from a single
// parsing pass rather than offering per-query parsing because callers
// (the build summary, the rendering tests) always want several views of
// the same document.
type Outline struct {
	// Title is the document title from the <title> tag.
	Title string

	// Headings lists h1 through h4 headings in document order.
	Headings []Heading

	// Anchors lists all <a> elements in document order.
	Anchors []Anchor

	// IDs collects every id attribute in document order.
	IDs []string

	// Elements lists every element that carries a class attribute,
	// in document order.
	Elements []Element

	// Tables lists all tables with their cell text.
	Tables []Table
}

// Heading is one h1-h4 heading.
type Heading struct {
	// Level is the heading level, 1 through 4.
	Level int

	// Text is the collapsed text content of the heading.
	Text string
}

// Anchor is one <a> element.
type Anchor struct {
	// Href is the raw href attribute.
	Href string

	// Text is the collapsed text content of the anchor.
	Text string

	// Class is the raw class attribute, if any.
	Class string
}

// Element is one element carrying a class attribute.
type Element struct {
	// Tag is the element name, e.g. "div" or "span".
	Tag string

	// Class is the raw class attribute.
	Class string

	// Text is the collapsed text content of the element and its
	// descendants.
	Text string
}

// Table is one <table> element with its cell text.
type Table struct {
	// Class is the raw class attribute, if any.
	Class string

	// Header holds the cell text of the header row, when the table
	// has one.
	Header []string

	// Rows holds the cell text of each body row.
	Rows [][]string
}

// Parse walks a rendered page and extracts its outline.
func Parse(r io.Reader) (*Outline, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	outline := &Outline{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			outline.processElement(n)

			// Tables collect their own subtree.
			if n.Data == "table" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return outline, nil
}

// processElement records one element node into the outline.
func (o *Outline) processElement(n *html.Node) {
	if id := getAttr(n, "id"); id != "" {
		o.IDs = append(o.IDs, id)
	}
	if class := getAttr(n, "class"); class != "" {
		o.Elements = append(o.Elements, Element{
			Tag:   n.Data,
			Class: class,
			Text:  textContent(n),
		})
	}

	switch n.Data {
	case "title":
		o.Title = textContent(n)
	case "h1", "h2", "h3", "h4":
		o.Headings = append(o.Headings, Heading{
			Level: int(n.Data[1] - '0'),
			Text:  textContent(n),
		})
	case "a":
		o.Anchors = append(o.Anchors, Anchor{
			Href:  getAttr(n, "href"),
			Text:  textContent(n),
			Class: getAttr(n, "class"),
		})
	case "table":
		o.Tables = append(o.Tables, parseTable(n))
	}
}

// parseTable extracts header and body cell text from a table subtree.
// A row whose cells are all <th> is treated as the header row.
func parseTable(n *html.Node) Table {
	table := Table{Class: getAttr(n, "class")}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells, allHeader := parseRow(n)
			if len(cells) == 0 {
				return
			}
			if allHeader && table.Header == nil {
				table.Header = cells
				return
			}
			table.Rows = append(table.Rows, cells)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return table
}

// parseRow extracts cell text from a table row and reports whether
// every cell is a header cell.
func parseRow(tr *html.Node) (cells []string, allHeader bool) {
	allHeader = true
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			cells = append(cells, textContent(c))
		case "td":
			cells = append(cells, textContent(c))
			allHeader = false
		}
	}
	return cells, allHeader
}

// textContent returns the collapsed text of a node and its descendants.
// Runs of whitespace collapse to a single space and the result is
// trimmed, so template formatting does not leak into assertions.
func textContent(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
