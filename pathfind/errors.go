package pathfind

import "errors"

// Sentinel errors for pathfind operations.
var (
	// ErrUnreachableEndpoint indicates the start or end pixel maps to a
	// non-passable cell; the search is not attempted.
	ErrUnreachableEndpoint = errors.New("pathfind: start or end point is not passable")
	// ErrOutOfBounds indicates the start or end pixel lies outside the
	// index's covered extent.
	ErrOutOfBounds = errors.New("pathfind: start or end point out of bounds")
	// ErrNotImplemented is returned by the declared-but-unspecified
	// Jump-Point-Search extension point.
	ErrNotImplemented = errors.New("pathfind: algorithm not implemented")
)
