package grid_test

import (
	"testing"

	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/grid"
	"github.com/quadpath/quadpath/spatial"
)

var (
	green = cell.RGB{0, 255, 0}
	red   = cell.RGB{255, 0, 0}
)

func allPassable(w, h int) cell.Matrix {
	m := make(cell.Matrix, h)
	for y := range m {
		m[y] = make([]cell.RGB, w)
		for x := range m[y] {
			m[y][x] = green
		}
	}
	return m
}

func TestBuild_Errors(t *testing.T) {
	opts := grid.Options{CellSize: 10, Passable: green, Blocked: red}

	t.Run("empty matrix", func(t *testing.T) {
		_, err := grid.Build(cell.Matrix{}, opts)
		if err != grid.ErrEmptyMatrix {
			t.Errorf("err = %v; want ErrEmptyMatrix", err)
		}
	})

	t.Run("indivisible dimensions", func(t *testing.T) {
		_, err := grid.Build(allPassable(95, 100), opts)
		if err != grid.ErrInvalidDimensions {
			t.Errorf("err = %v; want ErrInvalidDimensions", err)
		}
	})
}

func TestBuild_RowsColsCellCount(t *testing.T) {
	g, err := grid.Build(allPassable(100, 100), grid.Options{CellSize: 10, Passable: green, Blocked: red})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.Rows != 10 || g.Cols != 10 {
		t.Errorf("Rows/Cols = %d/%d; want 10/10", g.Rows, g.Cols)
	}
}

func TestGet_OutOfBounds(t *testing.T) {
	g, _ := grid.Build(allPassable(100, 100), grid.Options{CellSize: 10, Passable: green, Blocked: red})

	if _, err := g.Get(-1, 0); err != spatial.ErrOutOfBounds {
		t.Errorf("Get(-1,0) err = %v; want ErrOutOfBounds", err)
	}
	if _, err := g.Get(100, 0); err != spatial.ErrOutOfBounds {
		t.Errorf("Get(100,0) err = %v; want ErrOutOfBounds", err)
	}
	if _, err := g.Get(5, 5); err != nil {
		t.Errorf("Get(5,5) err = %v; want nil", err)
	}
}

func TestNeighbors_Cardinal(t *testing.T) {
	g, _ := grid.Build(allPassable(30, 30), grid.Options{CellSize: 10, Passable: green, Blocked: red})

	center, _ := g.Get(15, 15) // row 1, col 1 of a 3x3 grid
	ns := g.Neighbors(center)
	if len(ns) != 4 {
		t.Fatalf("center cell in 3x3 grid: len(Neighbors) = %d; want 4 (no diagonal)", len(ns))
	}

	corner, _ := g.Get(5, 5) // row 0, col 0
	ns = g.Neighbors(corner)
	if len(ns) != 2 {
		t.Fatalf("corner cell: len(Neighbors) = %d; want 2", len(ns))
	}
}

func TestNeighbors_Diagonal(t *testing.T) {
	g, _ := grid.Build(allPassable(30, 30), grid.Options{CellSize: 10, AllowDiagonal: true, Passable: green, Blocked: red})

	center, _ := g.Get(15, 15)
	ns := g.Neighbors(center)
	if len(ns) != 8 {
		t.Fatalf("center cell with diagonals: len(Neighbors) = %d; want 8", len(ns))
	}

	corner, _ := g.Get(5, 5)
	ns = g.Neighbors(corner)
	// N, W, NW are all out of bounds candidates; only E, S, SE remain.
	if len(ns) != 3 {
		t.Fatalf("corner cell with diagonals: len(Neighbors) = %d; want 3", len(ns))
	}
}

func TestNeighbors_SkipsBlocked(t *testing.T) {
	m := allPassable(30, 30)
	// Block the corner's E neighbor (row 0, col 1) and S neighbor (row 1, col 0).
	for y := 0; y < 10; y++ {
		for x := 10; x < 20; x++ {
			m[y][x] = red
			m[x][y] = red
		}
	}
	g, _ := grid.Build(m, grid.Options{CellSize: 10, Passable: green, Blocked: red})

	corner, _ := g.Get(5, 5)
	ns := g.Neighbors(corner)
	if len(ns) != 0 {
		t.Errorf("len(Neighbors) = %d; want 0 (both neighbors blocked)", len(ns))
	}
}

func TestCostAndHeuristic(t *testing.T) {
	g, _ := grid.Build(allPassable(30, 30), grid.Options{CellSize: 10, Passable: green, Blocked: red})

	a, _ := g.Get(5, 5)
	b, _ := g.Get(15, 5)

	cost := g.Cost(a, b, spatial.Euclidean)
	if cost != 10 {
		t.Errorf("Cost() = %v; want 10", cost)
	}
	if g.Heuristic(a, b, spatial.Euclidean) != cost {
		t.Errorf("Heuristic() != Cost()")
	}
}

func TestPassableRatio(t *testing.T) {
	m := allPassable(10, 20)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			m[y][x] = red
		}
	}
	g, _ := grid.Build(m, grid.Options{CellSize: 10, Passable: green, Blocked: red})
	// 1 of 2 rows (row 0) is fully blocked -> 1 of 2 cells passable.
	if ratio := g.PassableRatio(); ratio != 0.5 {
		t.Errorf("PassableRatio() = %v; want 0.5", ratio)
	}
}
