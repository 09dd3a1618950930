package aoc

import "testing"

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	if q.Len() != 3 {
		t.Fatalf("Len = %d, want 3", q.Len())
	}
	for _, want := range []int{1, 2, 3} {
		v, ok := q.Pop()
		if !ok || v != want {
			t.Errorf("Pop = %v, %v; want %v", v, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop of empty queue = ok")
	}
}

func TestQueueWhile(t *testing.T) {
	q := NewQueue(1, 2, 3, 4)
	var visited []int
	q.While(func(v int) bool {
		visited = append(visited, v)
		return v < 2 // stop early
	})
	if len(visited) != 2 {
		t.Errorf("While visited %v, want first two", visited)
	}
}

func TestPQ(t *testing.T) {
	var pq PQ[string]
	low := &PQI[string]{V: "low", P: 1}
	mid := &PQI[string]{V: "mid", P: 5}
	high := &PQI[string]{V: "high", P: 9}
	pq.Push(low)
	pq.Push(high)
	pq.Push(mid)

	if got := pq.Peek(); got.V != "high" {
		t.Errorf("Peek = %v, want high", got.V)
	}

	// Raising low's priority reorders the heap.
	low.P = 20
	pq.Update(low)

	var order []string
	for pq.Len() > 0 {
		order = append(order, pq.Pop().V)
	}
	want := []string{"low", "high", "mid"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Pop order = %v, want %v", order, want)
		}
	}
}
