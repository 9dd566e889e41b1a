package grid

import "strings"

// Coord addresses one grid cell, zero-based.
type Coord struct {
	Row, Col int
}

// Grid is the dense coordinate → cell mapping produced by Reconstruct.
// A spanning cell appears under every coordinate of its span rectangle, by
// reference. Coordinates a short row never filled are absent, not empty.
type Grid struct {
	Rows, Cols int

	cells map[Coord]*Cell
}

// At returns the cell at (row, col). ok is false for unpopulated coordinates,
// including everything outside [0,Rows)×[0,Cols).
func (g *Grid) At(row, col int) (*Cell, bool) {
	c, ok := g.cells[Coord{row, col}]
	return c, ok
}

// Coords returns every populated coordinate in row-major order.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if _, ok := g.cells[Coord{r, c}]; ok {
				out = append(out, Coord{r, c})
			}
		}
	}
	return out
}

// Reconstruct builds a dense grid from a table's rows of extracted cells.
//
// The column count is fixed up front from the first row's summed colspans.
// Placement walks each row with a column cursor, skipping coordinates already
// claimed by spans from earlier rows, then replicates the cell reference over
// its span rectangle with both spans clamped to what remains of the table.
// A cell spanning every row with no text or link content is a decorative
// spacer column: it is dropped and the effective column count shrinks for the
// rest of reconstruction. A table with no rows yields an empty grid.
func Reconstruct(rows [][]*Cell) *Grid {
	g := &Grid{cells: make(map[Coord]*Cell)}
	if len(rows) == 0 {
		return g
	}
	g.Rows = len(rows)

	cols := 0
	for _, cell := range rows[0] {
		cols += cell.colSpan()
	}

	for r, row := range rows {
		c := 0
		for _, cell := range row {
			if g.isDecorative(cell) {
				cols--
				continue
			}
			for c < cols {
				if _, taken := g.cells[Coord{r, c}]; !taken {
					break
				}
				c++
			}
			if c >= cols {
				break
			}
			rs := min(cell.rowSpan(), g.Rows-r)
			cs := min(cell.colSpan(), cols-c)
			for i := 0; i < rs; i++ {
				for j := 0; j < cs; j++ {
					g.cells[Coord{r + i, c + j}] = cell
				}
			}
			c += cs
		}
	}

	if cols < 0 {
		cols = 0
	}
	g.Cols = cols
	return g
}

// isDecorative reports whether cell is a full-height spacer column.
func (g *Grid) isDecorative(cell *Cell) bool {
	return cell.rowSpan() >= g.Rows && strings.TrimSpace(cell.Text) == "" && cell.Href == ""
}
