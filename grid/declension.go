package grid

import (
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/wiktlex/wiktlex/orderedset"
)

// Declension maps column-path → row-path → word forms, deduplicated in
// first-seen order. Paths are lowercased labels with internal spaces replaced
// by underscores, multi-level labels joined with " > ".
type Declension map[string]map[string][]string

// PathSep joins the levels of a multi-level label path.
const PathSep = " > "

// placeholder marks a not-applicable cell; labels carrying it are excluded.
const placeholder = "—"

var formSplitRe = regexp.MustCompile(`[,/\n]`)

// Assemble folds a reconstructed grid into its declension mapping. A
// (column-path, row-path) pair is recorded only when the column path is
// non-empty, at least one non-empty form was split out of the cell, and
// either the row path is non-empty or the table is a disguised
// one-dimensional list (exactly one more row than columns).
func Assemble(g *Grid) Declension {
	decl := make(Declension)
	oneDimensional := g.Rows-g.Cols == 1

	for _, coord := range g.Coords() {
		cell, _ := g.At(coord.Row, coord.Col)
		if cell.Kind != Content || cell.colSpan() > g.Cols {
			continue
		}
		colText := joinPath(g.ColPath(coord.Row, coord.Col))
		if colText == "" {
			continue
		}
		rowText := joinPath(g.RowPath(coord.Row, coord.Col))
		if rowText == "" && !oneDimensional {
			continue
		}
		forms := SplitForms(cell.Text)
		if len(forms) == 0 {
			continue
		}
		byRow, ok := decl[colText]
		if !ok {
			byRow = make(map[string][]string)
			decl[colText] = byRow
		}
		byRow[rowText] = orderedset.Merge(byRow[rowText], forms)
	}
	return decl
}

// Merge unions other into d with first-seen-order dedup per cell.
func (d Declension) Merge(other Declension) {
	for col, byRow := range other {
		dst, ok := d[col]
		if !ok {
			dst = make(map[string][]string)
			d[col] = dst
		}
		for row, forms := range byRow {
			dst[row] = orderedset.Merge(dst[row], forms)
		}
	}
}

// Forms returns every word form in the declension, deduplicated, columns and
// rows in lexical key order.
func (d Declension) Forms() []string {
	set := orderedset.New[string]()
	for _, col := range sortedKeys(d) {
		byRow := d[col]
		for _, row := range sortedKeys(byRow) {
			set.Update(byRow[row])
		}
	}
	return set.Items()
}

// SplitForms splits cell text on commas, slashes and newlines, trimming each
// candidate and dropping empties.
func SplitForms(text string) []string {
	var forms []string
	for _, part := range formSplitRe.Split(text, -1) {
		if p := strings.TrimSpace(part); p != "" {
			forms = append(forms, p)
		}
	}
	return forms
}

// joinPath renders a label path as a lookup key. Placeholder labels drop out.
func joinPath(labels []string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.Contains(l, placeholder) {
			continue
		}
		parts = append(parts, strings.ReplaceAll(strings.ToLower(l), " ", "_"))
	}
	return strings.Join(parts, PathSep)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
