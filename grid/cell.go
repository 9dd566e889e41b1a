// Package grid turns an irregular inflection-table cell list (spans, empty
// decorative columns, header cells mixed with content cells) into a dense
// coordinate grid, resolves the header labels scoping each cell, and folds the
// result into a column-path → row-path → word-forms declension mapping.
//
// The package is pure computation: cells arrive already extracted from markup
// and are never mutated here.
package grid

// Kind classifies a table cell.
type Kind int

const (
	// Empty is a cell with no usable classification.
	Empty Kind = iota
	// Header is a label cell scoping content below or to its right.
	Header
	// Content is a cell holding word forms in the processed language.
	Content
)

// Cell is one table cell as extracted from markup. Spans default to 1.
// Href is the first outbound link target, used upstream to decide whether the
// cell belongs to the language being processed; it stays on the cell so the
// decorative-column check can see whether any link content exists.
type Cell struct {
	Text    string
	RowSpan int
	ColSpan int
	Kind    Kind
	Href    string
}

func (c *Cell) rowSpan() int {
	if c.RowSpan < 1 {
		return 1
	}
	return c.RowSpan
}

func (c *Cell) colSpan() int {
	if c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}
