package trajectory

import (
	"math"

	"github.com/quadpath/quadpath/pathfind"
	"github.com/quadpath/quadpath/spatial"
)

// Point is a pixel-space coordinate in the geometric polyline.
type Point struct {
	X, Y int
}

func (p Point) euclidean(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Result is the full spec-level path result: the cell-level path and
// visited set from a pathfind search, plus the geometric polyline and
// its total length.
type Result struct {
	Path    []spatial.ElementID
	Visited []spatial.ElementID
	Points  []Point
	Length  float64
}

// Found reports whether a path was found.
func (r Result) Found() bool {
	return r.Path != nil
}

// Build converts pr's cell-sequence path into a geometric polyline
// anchored at the caller's original start/end pixels, and optionally
// smooths it (see smooth.go). If pr has no path, Build returns a Result
// with a nil Path and no points.
//
// The polyline is: [end pixel] ++ [center(cell) for each intermediate
// cell] ++ [start pixel] — matching pr.Path's end-to-start order. Start
// and end are the caller-provided pixel coordinates, not cell centers;
// only intermediate waypoints are centers.
func Build(idx spatial.Index, pr pathfind.PathResult, startX, startY, endX, endY int, smooth bool) Result {
	result := Result{Visited: pr.Visited}
	if !pr.Found() {
		return result
	}
	result.Path = pr.Path

	n := len(pr.Path)
	points := make([]Point, n)
	points[0] = Point{endX, endY}
	points[n-1] = Point{startX, startY}
	for i := 1; i < n-1; i++ {
		box, _ := idx.Box(pr.Path[i])
		cx, cy := box.Center()
		points[i] = Point{cx, cy}
	}

	if smooth {
		points = smoothPoints(idx, pr.Path, points)
	}

	result.Points = points
	result.Length = polylineLength(points)
	return result
}

func polylineLength(points []Point) float64 {
	var total float64
	for i := 0; i+1 < len(points); i++ {
		total += points[i].euclidean(points[i+1])
	}
	return total
}
