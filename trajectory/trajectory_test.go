package trajectory_test

import (
	"math"
	"testing"

	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/grid"
	"github.com/quadpath/quadpath/pathfind"
	"github.com/quadpath/quadpath/quadtree"
	"github.com/quadpath/quadpath/spatial"
	"github.com/quadpath/quadpath/trajectory"
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

func TestBuild_NoPath(t *testing.T) {
	g, _ := grid.Build(allPassable(100, 100), grid.Options{CellSize: 10, Passable: green, Blocked: red})
	pr := pathfind.PathResult{} // no path
	result := trajectory.Build(g, pr, 5, 5, 95, 95, false)
	if result.Found() {
		t.Error("Build() on an empty PathResult should report Found() == false")
	}
}

func TestBuild_AnchorsAtCallerPixels(t *testing.T) {
	g, _ := grid.Build(allPassable(100, 100), grid.Options{CellSize: 10, Passable: green, Blocked: red})
	pr, err := pathfind.AStar(g, 5, 5, 95, 95, spatial.Euclidean)
	if err != nil {
		t.Fatalf("AStar() error = %v", err)
	}

	result := trajectory.Build(g, pr, 5, 5, 95, 95, false)
	if !result.Found() {
		t.Fatal("expected a path")
	}
	first := result.Points[0]
	last := result.Points[len(result.Points)-1]
	if first != (trajectory.Point{X: 95, Y: 95}) {
		t.Errorf("first point = %+v; want the end pixel (95,95)", first)
	}
	if last != (trajectory.Point{X: 5, Y: 5}) {
		t.Errorf("last point = %+v; want the start pixel (5,5)", last)
	}
}

// TestBuild_S5SmoothingShortensTrajectory: on a quadtree with the NE
// quadrant blocked and diagonals disabled, the path threads NW -> SW -> SE
// around the block, and smoothing must strictly shorten the trajectory
// relative to the unsmoothed, center-threading polyline. (With diagonals
// enabled the path is the single NW -> SE corner hop, which has no
// intermediate waypoint to smooth.)
func TestBuild_S5SmoothingShortensTrajectory(t *testing.T) {
	m := allPassable(400, 400)
	for y := 0; y < 200; y++ {
		for x := 200; x < 400; x++ {
			m[y][x] = red
		}
	}
	q, err := quadtree.Build(m, 0, 0, 400, 400, quadtree.Options{MinSize: 50, AllowDiagonal: false, Passable: green, Blocked: red})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	pr, err := pathfind.AStar(q, 10, 10, 390, 390, spatial.Euclidean)
	if err != nil {
		t.Fatalf("AStar() error = %v", err)
	}
	if !pr.Found() {
		t.Fatal("expected a path around the obstacle")
	}

	unsmoothed := trajectory.Build(q, pr, 10, 10, 390, 390, false)
	smoothed := trajectory.Build(q, pr, 10, 10, 390, 390, true)

	if smoothed.Length >= unsmoothed.Length {
		t.Errorf("smoothed length %v should be strictly less than unsmoothed length %v", smoothed.Length, unsmoothed.Length)
	}
}

func TestPolylineLength_CollinearInvariant(t *testing.T) {
	g, _ := grid.Build(allPassable(100, 100), grid.Options{CellSize: 10, Passable: green, Blocked: red})
	pr, err := pathfind.AStar(g, 5, 5, 5, 95, spatial.Euclidean)
	if err != nil {
		t.Fatalf("AStar() error = %v", err)
	}

	result := trajectory.Build(g, pr, 5, 5, 5, 95, false)
	straightLine := 90.0
	if math.Abs(result.Length-straightLine) > 1e-6 {
		t.Errorf("Length = %v; want %v for a straight vertical path", result.Length, straightLine)
	}
}
