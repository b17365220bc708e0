// Package trajectory converts a pathfind.PathResult's cell-sequence path
// into a geometric polyline anchored at the caller's original pixel
// coordinates, and optionally smooths it by intersecting each segment
// against the borders of the cell it leaves.
//
// Result packages the full spec-level PathResult shape (path, visited,
// points, trajectory length) in one place: pathfind.PathResult supplies
// the cell-level path and visited set, and Build adds the geometric
// layer on top of it.
package trajectory
