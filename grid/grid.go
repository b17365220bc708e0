package grid

import (
	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/spatial"
)

// Grid is a uniform tiling spatial index: the source image is partitioned
// into Rows x Cols equal-sized square Cells, stored row-major. Identity of
// a Grid element is its flat index r*Cols + c.
type Grid struct {
	Rows, Cols int
	CellSize   int
	cells      []cell.Cell
	allowDiag  bool
}

// Build constructs a Grid by classifying every CellSize x CellSize tile of
// m. Returns ErrEmptyMatrix if m has no rows or columns, ErrInvalidDimensions
// if either dimension is not an exact multiple of opts.CellSize.
func Build(m cell.Matrix, opts Options) (*Grid, error) {
	h, w := m.Height(), m.Width()
	if h == 0 || w == 0 {
		return nil, ErrEmptyMatrix
	}
	size := opts.CellSize
	if size <= 0 || h%size != 0 || w%size != 0 {
		return nil, ErrInvalidDimensions
	}

	rows, cols := h/size, w/size
	cells := make([]cell.Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := c*size, r*size
			cells[r*cols+c] = cell.New(m, x, y, size, size, opts.Passable, opts.Blocked)
		}
	}

	return &Grid{
		Rows:      rows,
		Cols:      cols,
		CellSize:  size,
		cells:     cells,
		allowDiag: opts.AllowDiagonal,
	}, nil
}

// index converts a row/column pair to a flat row-major index.
func (g *Grid) index(r, c int) int {
	return r*g.Cols + c
}

// coordinate converts a flat row-major index back to a row/column pair.
func (g *Grid) coordinate(i int) (r, c int) {
	return i / g.Cols, i % g.Cols
}

// inBounds reports whether (r, c) is within the grid's row/column extent.
func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Get resolves a pixel coordinate to the grid cell that contains it.
func (g *Grid) Get(x, y int) (spatial.ElementID, error) {
	if x < 0 || y < 0 || x >= g.Cols*g.CellSize || y >= g.Rows*g.CellSize {
		return spatial.ElementID{}, spatial.ErrOutOfBounds
	}
	r, c := y/g.CellSize, x/g.CellSize
	return spatial.GridID(g.index(r, c)), nil
}

// Cell returns the cell.Cell for a grid element id. Panics if id does not
// address a valid grid cell (programmer error: ids must come from Get or
// Neighbors on this same Grid).
func (g *Grid) Cell(id spatial.ElementID) cell.Cell {
	return g.cells[id.Index]
}

// Box implements spatial.Index.
func (g *Grid) Box(id spatial.ElementID) (cell.Cell, bool) {
	if id.Kind != spatial.GridKind || int(id.Index) >= len(g.cells) {
		return cell.Cell{}, false
	}
	return g.cells[id.Index], true
}

// Neighbors enumerates the passable cells adjacent to id, iterating the 4
// cardinal directions and, if AllowDiagonal was set at Build, the 4
// diagonal directions, in the fixed order N,E,S,W,NW,NE,SE,SW. A diagonal
// direction is only considered if both adjacent cardinal cells are
// in-bounds (the rectangular-bounds policy; no corner-cutting relaxation).
func (g *Grid) Neighbors(id spatial.ElementID) []spatial.ElementID {
	r, c := g.coordinate(int(id.Index))
	var out []spatial.ElementID

	for _, d := range directions {
		if d.diag && !g.allowDiag {
			continue
		}
		nr, nc := r+d.dr, c+d.dc
		if !g.inBounds(nr, nc) {
			continue
		}
		if d.diag {
			// Both adjacent cardinal cells must be in-bounds.
			if !g.inBounds(r+d.dr, c) || !g.inBounds(r, c+d.dc) {
				continue
			}
		}
		if g.cells[g.index(nr, nc)].State != cell.Passable {
			continue
		}
		out = append(out, spatial.GridID(g.index(nr, nc)))
	}

	return out
}

// Cost returns the metric distance between the centers of a and b.
func (g *Grid) Cost(a, b spatial.ElementID, m spatial.Metric) float64 {
	ax, ay := g.cells[a.Index].Center()
	bx, by := g.cells[b.Index].Center()
	return spatial.Distance(m, ax, ay, bx, by)
}

// Heuristic is identical to Cost (see spatial.Metric's admissibility note).
func (g *Grid) Heuristic(a, b spatial.ElementID, m spatial.Metric) float64 {
	return g.Cost(a, b, m)
}

// Elements returns the ids of every cell in the grid, row-major. Used by
// renderers that need to paint the whole tiling, not just a search path.
func (g *Grid) Elements() []spatial.ElementID {
	out := make([]spatial.ElementID, len(g.cells))
	for i := range g.cells {
		out[i] = spatial.GridID(i)
	}
	return out
}

// PassableRatio returns the fraction of cells in the grid that are
// Passable, a simple diagnostic useful for CLI summaries.
func (g *Grid) PassableRatio() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	var passable int
	for _, c := range g.cells {
		if c.State == cell.Passable {
			passable++
		}
	}
	return float64(passable) / float64(len(g.cells))
}
