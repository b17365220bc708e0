package pathfind

import (
	"container/heap"

	"github.com/quadpath/quadpath/spatial"
)

// entry is one slot of the indexed heap: an element id, its current
// priority (f-score), and its position in the backing slice (kept in
// sync by Swap so Upsert can call heap.Fix in O(log N)).
type entry struct {
	id       spatial.ElementID
	priority float64
	index    int
}

// innerHeap is the container/heap.Interface implementation backing Queue.
type innerHeap []*entry

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *innerHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is an addressable (indexed) priority queue keyed by
// spatial.ElementID, supporting true decrease-key: re-inserting an
// element already present updates its priority in place via heap.Fix
// rather than pushing a stale duplicate.
type Queue struct {
	h    innerHeap
	byID map[spatial.ElementID]*entry
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{byID: make(map[spatial.ElementID]*entry)}
}

// Len reports the number of elements currently in the queue.
func (q *Queue) Len() int {
	return len(q.h)
}

// Contains reports whether id is currently present in the queue.
func (q *Queue) Contains(id spatial.ElementID) bool {
	_, ok := q.byID[id]
	return ok
}

// Upsert inserts id with the given priority, or — if id is already
// present — updates its priority in place (decrease-key) and restores
// the heap invariant in O(log N). Callers are expected to only ever
// upsert a strictly lower priority for an element already present (A*'s
// g_score is monotonically non-increasing); Upsert itself does not
// enforce that, it simply sets the priority.
func (q *Queue) Upsert(id spatial.ElementID, priority float64) {
	if e, ok := q.byID[id]; ok {
		e.priority = priority
		heap.Fix(&q.h, e.index)
		return
	}
	e := &entry{id: id, priority: priority}
	q.byID[id] = e
	heap.Push(&q.h, e)
}

// Pop removes and returns the element with the lowest priority. The
// second return is false if the queue is empty.
func (q *Queue) Pop() (spatial.ElementID, bool) {
	if len(q.h) == 0 {
		return spatial.ElementID{}, false
	}
	e := heap.Pop(&q.h).(*entry)
	delete(q.byID, e.id)
	return e.id, true
}
