package grid

// RowPath collects the header labels scoping (row, col) along its row:
// a backward scan over smaller columns gathering the nearest run of headers,
// most distant label first. A header contributes when its rowspan fits the
// grid and its text is non-empty and not yet collected; the first content
// cell after at least one header ends the run. Headers are not confined to
// column zero, so the scan must walk through arbitrarily many header layers
// rather than reading a fixed column.
func (g *Grid) RowPath(row, col int) []string {
	var labels []string
	seen := make(map[string]bool)
	headerRun := false

	for c := col - 1; c >= 0; c-- {
		cell, ok := g.At(row, c)
		if !ok {
			continue
		}
		if cell.Kind == Header {
			if cell.rowSpan() <= g.Rows && cell.Text != "" && !seen[cell.Text] {
				seen[cell.Text] = true
				labels = append([]string{cell.Text}, labels...)
				headerRun = true
			}
		} else if headerRun {
			break
		}
	}
	return labels
}

// ColPath is the column-axis counterpart of RowPath, scanning smaller rows in
// the same column. A header qualifies only when its colspan is strictly less
// than the grid's column count: full-width headers are table titles, not
// column labels.
func (g *Grid) ColPath(row, col int) []string {
	var labels []string
	seen := make(map[string]bool)
	headerRun := false

	for r := row - 1; r >= 0; r-- {
		cell, ok := g.At(r, col)
		if !ok {
			continue
		}
		if cell.Kind == Header {
			if cell.colSpan() < g.Cols && cell.Text != "" && !seen[cell.Text] {
				seen[cell.Text] = true
				labels = append([]string{cell.Text}, labels...)
				headerRun = true
			}
		} else if headerRun {
			break
		}
	}
	return labels
}
