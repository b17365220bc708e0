package quadtree

import (
	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/spatial"
)

// Neighbors implements spatial.Index: it enumerates the passable leaves
// adjacent to id, aggregating the 4 cardinal directions and, if
// AllowDiagonal was set at Build, the 4 diagonal directions, deduplicated
// into a set (iteration order N,E,S,W,NW,NE,SE,SW — deterministic, though
// the spec leaves set order implementation-defined).
func (q *Quadtree) Neighbors(id spatial.ElementID) []spatial.ElementID {
	i := int(id.Index)
	seen := make(map[int]struct{}, 8)
	var out []spatial.ElementID

	add := func(leaf int) {
		if _, ok := seen[leaf]; ok {
			return
		}
		seen[leaf] = struct{}{}
		out = append(out, spatial.QuadtreeID(leaf))
	}

	for _, dir := range []Direction{N, E, S, W} {
		for _, leaf := range q.cardinalNeighbors(i, dir) {
			add(leaf)
		}
	}

	if q.allowDiag {
		for _, dir := range []Direction{dirNW, dirNE, dirSE, dirSW} {
			if leaf, ok := q.diagonalNeighbor(i, dir); ok {
				add(leaf)
			}
		}
	}

	return out
}

// cardinalNeighbors returns the passable leaves adjacent to leaf i on
// side dir: first find the equal-or-greater neighbor (egn), then descend
// from it collecting every leaf whose boundary touches i's side.
func (q *Quadtree) cardinalNeighbors(i int, dir Direction) []int {
	start := q.egn(i, dir)
	if start == -1 {
		return nil
	}

	var passable []int
	for _, leaf := range q.descend(start, dir) {
		if q.nodes[leaf].box.State == cell.Passable {
			passable = append(passable, leaf)
		}
	}
	return passable
}

// egn ("equal-or-greater neighbor") finds the smallest ancestor-reachable
// node in direction dir that is at least as large as node i, by
// recursively resolving i's position among its parent's 4 children. If
// the recursion reaches the root without finding a neighbor in that
// direction, it returns -1 (boundary of the tree).
func (q *Quadtree) egn(i int, dir Direction) int {
	n := &q.nodes[i]
	if n.parent == -1 {
		return -1
	}
	p := &q.nodes[n.parent]

	switch dir {
	case N:
		if i == p.children[SW] {
			return p.children[NW]
		}
		if i == p.children[SE] {
			return p.children[NE]
		}
		up := q.egn(n.parent, N)
		if up == -1 || q.nodes[up].isLeaf() {
			return up
		}
		if i == p.children[NW] {
			return q.nodes[up].children[SW]
		}
		return q.nodes[up].children[SE] // i == NE

	case E:
		if i == p.children[NW] {
			return p.children[NE]
		}
		if i == p.children[SW] {
			return p.children[SE]
		}
		up := q.egn(n.parent, E)
		if up == -1 || q.nodes[up].isLeaf() {
			return up
		}
		if i == p.children[NE] {
			return q.nodes[up].children[NW]
		}
		return q.nodes[up].children[SW] // i == SE

	case S:
		if i == p.children[NW] {
			return p.children[SW]
		}
		if i == p.children[NE] {
			return p.children[SE]
		}
		up := q.egn(n.parent, S)
		if up == -1 || q.nodes[up].isLeaf() {
			return up
		}
		if i == p.children[SW] {
			return q.nodes[up].children[NW]
		}
		return q.nodes[up].children[NE] // i == SE

	case W:
		if i == p.children[NE] {
			return p.children[NW]
		}
		if i == p.children[SE] {
			return p.children[SW]
		}
		up := q.egn(n.parent, W)
		if up == -1 || q.nodes[up].isLeaf() {
			return up
		}
		if i == p.children[NW] {
			return q.nodes[up].children[NE]
		}
		return q.nodes[up].children[SE] // i == SW
	}

	return -1
}

// descend BFS-walks from start, replacing any internal node by its two
// children on the side opposite dir, collecting every leaf reached. This
// is the set of leaves (of whatever size) whose boundary touches the
// query leaf's side in direction dir.
func (q *Quadtree) descend(start int, dir Direction) []int {
	var leaves []int
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if q.nodes[cur].isLeaf() {
			leaves = append(leaves, cur)
			continue
		}

		ch := q.nodes[cur].children
		switch dir {
		case N:
			queue = append(queue, ch[SW], ch[SE])
		case E:
			queue = append(queue, ch[NW], ch[SW])
		case S:
			queue = append(queue, ch[NW], ch[NE])
		case W:
			queue = append(queue, ch[NE], ch[SE])
		}
	}

	return leaves
}

// diagonalNeighbor probes the pixel one unit outside the corresponding
// corner of leaf i's box and performs a root point-lookup. It accepts the
// hit only if it is a passable leaf; a probe landing on a Blocked cell
// rejects rather than falling back to a structural search (the corner
// pixel may be inside a Blocked cell even though a large, mostly-passable
// diagonal neighbor exists — the source's behavior is to reject, and this
// is preserved deliberately).
func (q *Quadtree) diagonalNeighbor(i int, dir Direction) (int, bool) {
	b := q.nodes[i].box

	var px, py int
	switch dir {
	case dirNW:
		px, py = b.X-1, b.Y-1
	case dirNE:
		px, py = b.X+b.W, b.Y-1
	case dirSE:
		px, py = b.X+b.W, b.Y+b.H
	case dirSW:
		px, py = b.X-1, b.Y+b.H
	default:
		return -1, false
	}

	id, err := q.Get(px, py)
	if err != nil {
		return -1, false
	}

	idx := int(id.Index)
	if q.nodes[idx].box.State != cell.Passable {
		return -1, false
	}
	return idx, true
}
