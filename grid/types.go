package grid

import "github.com/quadpath/quadpath/cell"

// Options configures grid construction.
type Options struct {
	// CellSize is the side length, in pixels, of one grid cell. Image
	// width and height must both be exact multiples of CellSize.
	CellSize int
	// AllowDiagonal enables the 4 diagonal neighbor directions in
	// addition to the 4 cardinal ones.
	AllowDiagonal bool
	// Passable and Blocked are the two reference colors the classifier
	// compares pixels against.
	Passable, Blocked cell.RGB
}

// direction is one of the 8 compass directions a grid cell may have a
// neighbor in, in the fixed iteration order N,E,S,W,NW,NE,SE,SW.
type direction struct {
	name   string
	dr, dc int
	diag   bool
}

var directions = []direction{
	{"N", -1, 0, false},
	{"E", 0, 1, false},
	{"S", 1, 0, false},
	{"W", 0, -1, false},
	{"NW", -1, -1, true},
	{"NE", -1, 1, true},
	{"SE", 1, 1, true},
	{"SW", 1, -1, true},
}
