package pathfind

import "github.com/quadpath/quadpath/spatial"

// PathResult is the outcome of a single search. Path is ordered
// end-to-start (end first, start last) as produced by reconstruction —
// this ordering is load-bearing for the trajectory package, which builds
// its polyline in the same order, with the caller's end pixel in place of
// the first cell and the caller's start pixel in place of the last. Visited holds every element the search touched
// (expanded or relaxed), populated even when no path was found, so
// callers can render it for diagnosis.
//
// A nil Path means no path was found (spec: NoPath is data, not an
// error); Visited is still populated in that case.
type PathResult struct {
	Path    []spatial.ElementID
	Visited []spatial.ElementID
	Cost    float64
}

// Found reports whether a path was found.
func (r PathResult) Found() bool {
	return r.Path != nil
}

// PathLength returns the number of elements in the path, or -1 if no
// path was found.
func (r PathResult) PathLength() int {
	if r.Path == nil {
		return -1
	}
	return len(r.Path)
}

// VisitedLength returns the number of elements touched by the search.
func (r PathResult) VisitedLength() int {
	return len(r.Visited)
}
