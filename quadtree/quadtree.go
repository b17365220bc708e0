package quadtree

import (
	"github.com/quadpath/quadpath/cell"
	"github.com/quadpath/quadpath/spatial"
)

// Quadtree is a region quadtree over a pixel occupancy map, stored as a
// single arena of nodes. It is immutable once built; concurrent readers
// need no locking.
type Quadtree struct {
	nodes     []node
	root      int
	minSize   int
	allowDiag bool
}

// Build classifies the rectangle (x, y, w, h) of m and recursively
// subdivides it into a region quadtree. Internal nodes are always Mixed
// and have exactly 4 children tiling their box without gaps or overlap,
// in the fixed order [NW, NE, SW, SE]; odd width/height remainders are
// absorbed by the eastern/southern children. Subdivision stops when a
// rectangle is not Mixed, or when either half-dimension would fall below
// opts.MinSize (in which case the node remains a Mixed leaf).
func Build(m cell.Matrix, x, y, w, h int, opts Options) (*Quadtree, error) {
	if m.Height() == 0 || m.Width() == 0 {
		return nil, ErrEmptyMatrix
	}

	q := &Quadtree{minSize: opts.MinSize, allowDiag: opts.AllowDiagonal}
	q.root = q.buildNode(m, x, y, w, h, -1, 0, opts.Passable, opts.Blocked)
	return q, nil
}

func (q *Quadtree) buildNode(m cell.Matrix, x, y, w, h, parent, depth int, passable, blocked cell.RGB) int {
	idx := len(q.nodes)
	state := cell.Classify(m, x, y, w, h, passable, blocked)
	q.nodes = append(q.nodes, node{
		box:      cell.Cell{X: x, Y: y, W: w, H: h, State: state},
		depth:    depth,
		parent:   parent,
		children: [4]int{-1, -1, -1, -1},
	})

	if state != cell.Mixed {
		return idx
	}

	halfW, halfH := w/2, h/2
	if halfW < q.minSize || halfH < q.minSize {
		return idx
	}

	wRem, hRem := w%2, h%2
	nw := q.buildNode(m, x, y, halfW, halfH, idx, depth+1, passable, blocked)
	ne := q.buildNode(m, x+halfW, y, halfW+wRem, halfH, idx, depth+1, passable, blocked)
	sw := q.buildNode(m, x, y+halfH, halfW, halfH+hRem, idx, depth+1, passable, blocked)
	se := q.buildNode(m, x+halfW, y+halfH, halfW+wRem, halfH+hRem, idx, depth+1, passable, blocked)
	q.nodes[idx].children = [4]int{nw, ne, sw, se}

	return idx
}

// Get recurses from the root, at each internal node selecting the unique
// child whose box contains (x, y), and returns the leaf reached. Returns
// spatial.ErrOutOfBounds if (x, y) falls outside the root's box.
func (q *Quadtree) Get(x, y int) (spatial.ElementID, error) {
	if !q.nodes[q.root].box.Contains(x, y) {
		return spatial.ElementID{}, spatial.ErrOutOfBounds
	}

	idx := q.root
	for !q.nodes[idx].isLeaf() {
		next := -1
		for _, ch := range q.nodes[idx].children {
			if q.nodes[ch].box.Contains(x, y) {
				next = ch
				break
			}
		}
		idx = next
	}

	return spatial.QuadtreeID(idx), nil
}

// Box implements spatial.Index.
func (q *Quadtree) Box(id spatial.ElementID) (cell.Cell, bool) {
	if id.Kind != spatial.QuadtreeKind || int(id.Index) >= len(q.nodes) {
		return cell.Cell{}, false
	}
	return q.nodes[id.Index].box, true
}

// Cost returns the metric distance between the centers of a and b.
func (q *Quadtree) Cost(a, b spatial.ElementID, m spatial.Metric) float64 {
	ax, ay := q.nodes[a.Index].box.Center()
	bx, by := q.nodes[b.Index].box.Center()
	return spatial.Distance(m, ax, ay, bx, by)
}

// Heuristic is identical to Cost (see spatial.Metric's admissibility note).
func (q *Quadtree) Heuristic(a, b spatial.ElementID, m spatial.Metric) float64 {
	return q.Cost(a, b, m)
}

// LeafCount returns the number of leaf nodes in the tree, a simple
// diagnostic useful for CLI summaries.
func (q *Quadtree) LeafCount() int {
	count := 0
	for _, n := range q.nodes {
		if n.isLeaf() {
			count++
		}
	}
	return count
}

// Elements returns the ids of every leaf node in the tree. Used by
// renderers that need to paint the whole tiling, not just a search path.
func (q *Quadtree) Elements() []spatial.ElementID {
	var out []spatial.ElementID
	for i, n := range q.nodes {
		if n.isLeaf() {
			out = append(out, spatial.QuadtreeID(i))
		}
	}
	return out
}

// Depth returns the subdivision depth of the element addressed by id, or
// -1 if id is not a valid element of this tree.
func (q *Quadtree) Depth(id spatial.ElementID) int {
	if id.Kind != spatial.QuadtreeKind || int(id.Index) >= len(q.nodes) {
		return -1
	}
	return q.nodes[id.Index].depth
}
