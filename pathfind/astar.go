package pathfind

import (
	"github.com/quadpath/quadpath/spatial"
)

// AStar runs best-first search over idx from the element containing
// (startX, startY) to the element containing (endX, endY), under metric
// m. Returns ErrOutOfBounds if either point is outside idx's extent, and
// ErrUnreachableEndpoint if either resolved element is not passable. A
// search that exhausts the open set without reaching the end returns a
// PathResult with a nil Path and a populated Visited — that is data, not
// an error.
func AStar(idx spatial.Index, startX, startY, endX, endY int, m spatial.Metric) (PathResult, error) {
	start, end, err := resolveEndpoints(idx, startX, startY, endX, endY)
	if err != nil {
		return PathResult{}, err
	}

	cameFrom := map[spatial.ElementID]spatial.ElementID{}
	hasCameFrom := map[spatial.ElementID]bool{}
	g := map[spatial.ElementID]float64{start: 0}

	open := NewQueue()
	open.Upsert(start, 0)

	for open.Len() > 0 {
		u, _ := open.Pop()
		if u == end {
			break
		}

		for _, v := range idx.Neighbors(u) {
			tentative := g[u] + idx.Cost(u, v, m)
			if existing, ok := g[v]; ok && tentative >= existing {
				continue
			}
			g[v] = tentative
			cameFrom[v] = u
			hasCameFrom[v] = true
			open.Upsert(v, tentative+idx.Heuristic(v, end, m))
		}
	}

	return reconstruct(start, end, cameFrom, hasCameFrom, g), nil
}

// resolveEndpoints resolves both pixel coordinates to elements and
// validates them, per the spec's fatal-at-search-start error contract.
func resolveEndpoints(idx spatial.Index, startX, startY, endX, endY int) (start, end spatial.ElementID, err error) {
	start, err = idx.Get(startX, startY)
	if err != nil {
		return spatial.ElementID{}, spatial.ElementID{}, ErrOutOfBounds
	}
	end, err = idx.Get(endX, endY)
	if err != nil {
		return spatial.ElementID{}, spatial.ElementID{}, ErrOutOfBounds
	}

	startBox, _ := idx.Box(start)
	endBox, _ := idx.Box(end)
	if !startBox.Passable() || !endBox.Passable() {
		return spatial.ElementID{}, spatial.ElementID{}, ErrUnreachableEndpoint
	}

	return start, end, nil
}

// reconstruct builds the PathResult from a completed search's scratch
// state. Visited is every key of cameFrom (every element relaxed during
// the search) plus start. If end was never reached, Path is nil.
func reconstruct(start, end spatial.ElementID, cameFrom map[spatial.ElementID]spatial.ElementID, hasCameFrom map[spatial.ElementID]bool, g map[spatial.ElementID]float64) PathResult {
	visited := make([]spatial.ElementID, 0, len(cameFrom)+1)
	for v := range hasCameFrom {
		visited = append(visited, v)
	}
	visited = append(visited, start)

	if end != start && !hasCameFrom[end] {
		return PathResult{Visited: visited}
	}

	// Walk came_from from end back to start, end-first.
	path := []spatial.ElementID{end}
	cur := end
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	return PathResult{Path: path, Visited: visited, Cost: g[end]}
}
