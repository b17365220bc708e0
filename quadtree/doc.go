// Package quadtree builds and queries a region quadtree over a pixel
// occupancy map: uniform regions are collapsed into large leaves, mixed
// regions recursively split into four quadrants until either a uniform
// classification or a configured minimum size is reached.
//
// The hard part of this package is the neighbor query (neighbors.go): for
// a leaf of arbitrary size, finding the set of adjacent leaves of
// possibly different sizes in O(log N) requires first climbing to the
// smallest ancestor-reachable node that is at least as large as the query
// leaf (the "equal-or-greater neighbor", EGN), then descending from there
// to collect every leaf whose boundary touches the query side. Diagonal
// adjacency is resolved separately, by a point probe just outside the
// query leaf's corner.
//
// Nodes live in a single arena (Quadtree.nodes); parent and children are
// arena indices, not pointers, so the tree is trivially destructible (drop
// the arena) with no cycle to break despite every non-root node holding a
// back-reference to its parent.
package quadtree
