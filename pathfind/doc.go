// Package pathfind implements best-first search (A*) and plain
// breadth-first search over an abstract spatial.Index: either a grid.Grid
// or a quadtree.Quadtree, or any other type satisfying spatial.Index.
//
// The engine is parametrized over the index and a spatial.Metric; it owns
// its scratch state (came-from, g-scores, open set) locally for the
// duration of one call and never mutates the index. The open set is an
// indexed binary heap supporting true decrease-key (queue.go), not the
// push-duplicates-and-skip-stale pattern: g_score values are monotonically
// non-increasing over the life of a key, and the heap always reflects each
// element's current best f-score.
package pathfind
