package pathfind

import "github.com/quadpath/quadpath/spatial"

// Algorithm selects a search strategy for Run. JPS is a declared extension
// point left unspecified (see spec §1); it is acknowledged here so callers
// can select it and receive ErrNotImplemented rather than the type not
// existing at all, mirroring the original source's own unimplemented
// `__jps` stub.
type Algorithm int

const (
	BFSAlgorithm Algorithm = iota
	AStarAlgorithm
	JPS
)

// Run dispatches to BFS or AStar by algo, or returns ErrNotImplemented for
// JPS. Metric is ignored by BFSAlgorithm (BFS is unweighted).
func Run(algo Algorithm, idx spatial.Index, startX, startY, endX, endY int, m spatial.Metric) (PathResult, error) {
	switch algo {
	case BFSAlgorithm:
		return BFS(idx, startX, startY, endX, endY)
	case AStarAlgorithm:
		return AStar(idx, startX, startY, endX, endY, m)
	default:
		return PathResult{}, ErrNotImplemented
	}
}
