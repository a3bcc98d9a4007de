// Package table extracts positioned characters from an HTML table.
//
// The consumed format is a document containing one data table: the first
// row is a header, and every following row carries at least three cells
// in the order (x-coordinate, character, y-coordinate). Cell text is
// trimmed before use. The column order is deliberate; the documents this
// decodes place the character between the two coordinates.
package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"griddecode/core"
)

// Common errors
var (
	ErrNoTable = errors.New("no table found in document")
)

// Parser turns table-formatted markup into an ordered cell list.
// Malformed rows are skipped with a diagnostic rather than aborting the
// whole decode; one bad row should not cost the rest of the graphic.
type Parser struct {
	// Diag receives one line per skipped row. Defaults to os.Stderr.
	Diag io.Writer
}

// NewParser creates a parser that reports skipped rows to stderr.
func NewParser() *Parser {
	return &Parser{Diag: os.Stderr}
}

// Parse locates the first table in markup and extracts its data rows as
// cells, in document order. Duplicate coordinates are preserved; the
// renderer resolves them last-write-wins. Returns ErrNoTable when the
// document has no table element.
func (p *Parser) Parse(markup string) ([]core.Cell, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	tbl := findFirst(doc, atom.Table)
	if tbl == nil {
		return nil, ErrNoTable
	}

	var cells []core.Cell
	rows := findAll(tbl, atom.Tr)
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}

		tds := findAll(row, atom.Td)
		if len(tds) < 3 {
			p.warnf("skipping row %d: %d cells, need 3", i+1, len(tds))
			continue
		}

		xText := strings.TrimSpace(text(tds[0]))
		charText := strings.TrimSpace(text(tds[1]))
		yText := strings.TrimSpace(text(tds[2]))

		x, err := parseCoordinate(xText)
		if err != nil {
			p.warnf("skipping row %d: x coordinate %q: %v", i+1, xText, err)
			continue
		}
		y, err := parseCoordinate(yText)
		if err != nil {
			p.warnf("skipping row %d: y coordinate %q: %v", i+1, yText, err)
			continue
		}

		char := firstGrapheme(charText)
		if char == "" {
			p.warnf("skipping row %d: empty character cell", i+1)
			continue
		}

		cells = append(cells, core.Cell{
			Point: core.Point{X: x, Y: y},
			Char:  char,
		})
	}

	return cells, nil
}

// warnf writes a skipped-row diagnostic.
func (p *Parser) warnf(format string, args ...interface{}) {
	out := p.Diag
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, format+"\n", args...)
}

// parseCoordinate parses a non-negative integer grid coordinate.
func parseCoordinate(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("not an integer")
	}
	if n < 0 {
		return 0, errors.New("negative coordinate")
	}
	return n, nil
}

// findFirst returns the first element with the given tag, depth-first.
func findFirst(n *html.Node, tag atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every element with the given tag under n, depth-first,
// excluding n itself.
func findAll(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == tag {
			out = append(out, c)
		}
		out = append(out, findAll(c, tag)...)
	}
	return out
}

// text concatenates all text nodes beneath n.
func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
