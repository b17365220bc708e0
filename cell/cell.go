package cell

// State is the ternary occupancy state of a rectangular region.
type State int

const (
	// Passable means the region contains at least one passable pixel and
	// no blocked pixels.
	Passable State = iota
	// Blocked means the region contains at least one blocked pixel and no
	// passable pixels.
	Blocked
	// Mixed means the region contains both, or neither (conservative:
	// a region with neither reference color present is treated as Mixed).
	Mixed
)

// String renders the state for debugging and log lines.
func (s State) String() string {
	switch s {
	case Passable:
		return "Passable"
	case Blocked:
		return "Blocked"
	case Mixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// Cell is the axis-aligned rectangular region primitive shared by the grid
// and quadtree indices. Coordinates are pixel-space, origin top-left, y
// growing downward. Width and height must both be positive; Cell itself
// does not enforce this. grid.Build does (via a positive cell size and a
// non-empty matrix); quadtree.Build checks only that the matrix is
// non-empty and uses the rectangle it is given.
type Cell struct {
	X, Y, W, H int
	State      State
}

// Center returns the integer-truncated center point of the cell.
func (c Cell) Center() (int, int) {
	return c.X + c.W/2, c.Y + c.H/2
}

// Contains reports whether the pixel (px, py) lies within the cell,
// using a half-open rectangle: [X, X+W) x [Y, Y+H).
func (c Cell) Contains(px, py int) bool {
	return px >= c.X && px < c.X+c.W && py >= c.Y && py < c.Y+c.H
}

// Passable reports whether the cell's state permits traversal.
func (c Cell) Passable() bool {
	return c.State == Passable
}
