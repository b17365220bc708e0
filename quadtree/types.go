package quadtree

import "github.com/quadpath/quadpath/cell"

// Options configures quadtree construction.
type Options struct {
	// MinSize is the minimum side length, in pixels, of a leaf. A Mixed
	// region stops subdividing once either half-dimension would fall
	// below MinSize, becoming a Mixed leaf at minimum resolution.
	MinSize int
	// AllowDiagonal enables the 4 diagonal neighbor directions, resolved
	// by corner-pixel probing rather than structural descent.
	AllowDiagonal bool
	// Passable and Blocked are the two reference colors the classifier
	// compares pixels against.
	Passable, Blocked cell.RGB
}

// Child identifies a node's position among its parent's 4 children. The
// fixed order [NW, NE, SW, SE] is canonical throughout this package: it
// is how children tile the parent (odd width/height remainders are
// absorbed by the eastern/southern children) and how the neighbor tables
// in neighbors.go are indexed.
type Child int

const (
	NW Child = iota
	NE
	SW
	SE
)

// Direction is a compass direction used in neighbor queries. The four
// cardinal directions resolve via the equal-or-greater-neighbor algorithm;
// the four diagonal directions resolve via corner-pixel probing.
type Direction int

const (
	N Direction = iota
	E
	S
	W
	dirNW
	dirNE
	dirSE
	dirSW
)

func (d Direction) isDiagonal() bool {
	return d == dirNW || d == dirNE || d == dirSE || d == dirSW
}

// node is one arena entry. parent == -1 marks the root. children[0] == -1
// marks a leaf (children are allocated in one batch of 4, so checking the
// first slot suffices).
type node struct {
	box      cell.Cell
	depth    int
	parent   int
	children [4]int
}

func (n node) isLeaf() bool {
	return n.children[0] == -1
}
