package pathfind

import (
	"testing"

	"github.com/quadpath/quadpath/spatial"
)

func TestQueue_PopOrdersByPriority(t *testing.T) {
	q := NewQueue()
	a, b, c := spatial.GridID(1), spatial.GridID(2), spatial.GridID(3)
	q.Upsert(a, 5)
	q.Upsert(b, 1)
	q.Upsert(c, 3)

	want := []spatial.ElementID{b, c, a}
	for _, w := range want {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() returned ok=false; want an element")
		}
		if got != w {
			t.Errorf("Pop() = %v; want %v", got, w)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue returned ok=true")
	}
}

func TestQueue_UpsertDecreasesKeyInPlace(t *testing.T) {
	q := NewQueue()
	a, b := spatial.GridID(1), spatial.GridID(2)
	q.Upsert(a, 10)
	q.Upsert(b, 20)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", q.Len())
	}

	// Decrease-key: b should now sort before a, and the queue must not
	// grow (no stale duplicate pushed).
	q.Upsert(b, 1)
	if q.Len() != 2 {
		t.Fatalf("Len() after decrease-key = %d; want 2 (no duplicate entries)", q.Len())
	}

	got, _ := q.Pop()
	if got != b {
		t.Errorf("Pop() = %v; want %v after decrease-key", got, b)
	}
}

func TestQueue_Contains(t *testing.T) {
	q := NewQueue()
	a := spatial.GridID(1)
	if q.Contains(a) {
		t.Error("Contains() = true before insertion")
	}
	q.Upsert(a, 1)
	if !q.Contains(a) {
		t.Error("Contains() = false after insertion")
	}
	q.Pop()
	if q.Contains(a) {
		t.Error("Contains() = true after Pop")
	}
}
