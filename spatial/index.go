package spatial

import (
	"errors"

	"github.com/quadpath/quadpath/cell"
)

// ErrOutOfBounds is returned by Get when the queried pixel lies outside
// the index's covered extent.
var ErrOutOfBounds = errors.New("spatial: point out of bounds")

// Kind discriminates which concrete index an ElementID addresses.
type Kind uint8

const (
	// GridKind marks an ElementID produced by a grid.Grid.
	GridKind Kind = iota
	// QuadtreeKind marks an ElementID produced by a quadtree.Quadtree.
	QuadtreeKind
)

// ElementID is an opaque, comparable handle to an element of a spatial
// index. It is a tagged union rather than a raw pointer or interface value:
// Grid elements carry their flat row-major index in Index; quadtree
// elements carry their arena index in Index. Two ElementIDs are equal iff
// they address the same element of the same index, which makes ElementID
// safe to use as a map key in came_from/g_score without any dynamic casts.
type ElementID struct {
	Kind  Kind
	Index uint32
}

// GridID builds an ElementID addressing a grid cell by flat index.
func GridID(i int) ElementID {
	return ElementID{Kind: GridKind, Index: uint32(i)}
}

// QuadtreeID builds an ElementID addressing a quadtree arena node.
func QuadtreeID(i int) ElementID {
	return ElementID{Kind: QuadtreeKind, Index: uint32(i)}
}

// Index is the capability surface A* (and BFS) consume. Both grid.Grid and
// quadtree.Quadtree satisfy it. Implementations are immutable after
// construction and safe for concurrent read-only use.
type Index interface {
	// Get resolves a pixel coordinate to the element that contains it.
	// Returns ErrOutOfBounds if (x, y) falls outside the index's extent.
	Get(x, y int) (ElementID, error)

	// Neighbors enumerates the passable elements adjacent to id, in the
	// index's deterministic direction order.
	Neighbors(id ElementID) []ElementID

	// Cost returns the step cost of moving from a to b under the given
	// metric: the metric distance between their centers.
	Cost(a, b ElementID, m Metric) float64

	// Heuristic returns the estimated remaining cost from a to b under
	// the given metric. In this system it is always identical to Cost
	// (see the admissibility caveat documented on Metric).
	Heuristic(a, b ElementID, m Metric) float64

	// Box returns the bounding cell.Cell of an element, for rendering
	// and for trajectory construction. The bool is false if id is not
	// known to this index.
	Box(id ElementID) (cell.Cell, bool)
}
