package trajectory

import (
	"math"

	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/spatial"
)

// smoothPoints replaces each intermediate waypoint by the point where the
// segment leading into it exits the bounding box of the cell that
// waypoint belongs to, if such an intersection exists; otherwise the
// original center waypoint is kept. Start and end anchors (the first and
// last points) are never moved.
//
// This fuses the segment and cell iteration into a single pass keyed by
// the cell the *arriving* point belongs to (path[i] for points[i]),
// rather than reproducing the original source's off-by-one indexing
// between path_boxes and points (spec §9 open question 3).
func smoothPoints(idx spatial.Index, path []spatial.ElementID, points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	for i := 0; i+1 < len(points); i++ {
		j := i + 1
		if j == len(points)-1 {
			continue // never move the start anchor
		}
		box, ok := idx.Box(path[j])
		if !ok {
			continue
		}
		if hit, ok := exitPoint(out[i], points[j], box); ok {
			out[j] = hit
		}
	}

	return out
}

// exitPoint tests segment (from, to) against the 4 edges of box in the
// fixed order N, E, S, W, returning the first intersection found,
// rounded to the nearest pixel.
func exitPoint(from, to Point, box cell.Cell) (Point, bool) {
	x0, y0 := box.X, box.Y
	x1, y1 := box.X+box.W-1, box.Y+box.H-1

	edges := [4][2]Point{
		{{x0, y0}, {x1, y0}}, // N
		{{x1, y0}, {x1, y1}}, // E
		{{x0, y1}, {x1, y1}}, // S
		{{x0, y0}, {x0, y1}}, // W
	}

	for _, edge := range edges {
		if hit, ok := intersectSegments(from, to, edge[0], edge[1]); ok {
			return hit, true
		}
	}
	return Point{}, false
}

// intersectSegments finds the intersection of segments (p1,p2) and
// (p3,p4), if one exists within both segments' parametric range [0,1],
// endpoints included. Parallel (including collinear) segments report no intersection.
func intersectSegments(p1, p2, p3, p4 Point) (Point, bool) {
	d1x, d1y := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	d2x, d2y := float64(p4.X-p3.X), float64(p4.Y-p3.Y)

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return Point{}, false
	}

	ex, ey := float64(p3.X-p1.X), float64(p3.Y-p1.Y)
	t := (ex*d2y - ey*d2x) / denom
	u := (ex*d1y - ey*d1x) / denom

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	x := float64(p1.X) + t*d1x
	y := float64(p1.Y) + t*d1y
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}, true
}
