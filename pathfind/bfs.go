package pathfind

import "github.com/quadpath/quadpath/spatial"

// BFS runs unweighted breadth-first search over idx, ignoring cost and
// heuristic entirely (shortest hop count, not shortest metric distance).
// It shares PathResult's shape with AStar and is primarily useful as a
// ground-truth oracle for testing the neighbor relation of grid.Grid and
// quadtree.Quadtree independent of any distance metric.
func BFS(idx spatial.Index, startX, startY, endX, endY int) (PathResult, error) {
	start, end, err := resolveEndpoints(idx, startX, startY, endX, endY)
	if err != nil {
		return PathResult{}, err
	}

	cameFrom := map[spatial.ElementID]spatial.ElementID{}
	hasCameFrom := map[spatial.ElementID]bool{}
	visitedSet := map[spatial.ElementID]bool{start: true}

	queue := []spatial.ElementID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u == end {
			break
		}

		for _, v := range idx.Neighbors(u) {
			if visitedSet[v] {
				continue
			}
			visitedSet[v] = true
			cameFrom[v] = u
			hasCameFrom[v] = true
			queue = append(queue, v)
		}
	}

	g := map[spatial.ElementID]float64{}
	return reconstruct(start, end, cameFrom, hasCameFrom, g), nil
}
