package shape

import "iter"

// GridSpec describes a rectangular arrangement of equally sized cells laid
// out from a top-left origin.
type GridSpec struct {
	OriginX, OriginY int // top-left corner of the first cell

	CellWidth, CellHeight int
	Columns, Rows         int

	// SpacingX and SpacingY are gaps between adjacent cells.
	SpacingX, SpacingY int

	// Padding shrinks every cell symmetrically on all four sides after
	// spacing is applied. Padding large enough to invert a cell collapses
	// that cell to its center point.
	Padding int
}

// GridCells yields the grid's cells lazily in row-major order: row 0 left to
// right, then row 1, and so on.
func GridCells(spec GridSpec) iter.Seq[*Rect] {
	return func(yield func(*Rect) bool) {
		for row := 0; row < spec.Rows; row++ {
			for col := 0; col < spec.Columns; col++ {
				x1 := spec.OriginX + col*(spec.CellWidth+spec.SpacingX)
				y1 := spec.OriginY + row*(spec.CellHeight+spec.SpacingY)
				x2 := x1 + spec.CellWidth
				y2 := y1 + spec.CellHeight
				if spec.Padding > 0 {
					x1, x2 = pad(x1, x2, spec.Padding)
					y1, y2 = pad(y1, y2, spec.Padding)
				}
				if !yield(NewRect(x1, y1, x2, y2)) {
					return
				}
			}
		}
	}
}

// Grid returns the grid's cells as a slice, in the same row-major order.
func Grid(spec GridSpec) []*Rect {
	cells := make([]*Rect, 0, spec.Columns*spec.Rows)
	for r := range GridCells(spec) {
		cells = append(cells, r)
	}
	return cells
}

// pad shrinks [lo, hi] by p on each side, collapsing to the midpoint when
// the padding would invert the interval.
func pad(lo, hi, p int) (int, int) {
	lo += p
	hi -= p
	if lo > hi {
		mid := (lo + hi) / 2
		return mid, mid
	}
	return lo, hi
}
