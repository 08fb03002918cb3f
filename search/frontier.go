package search

import "container/heap"

// Key orders frontier entries: lower Priority first, then lower Tie.
// With a per-cell unique Tie the order is total, so equal inputs always
// produce the same expansion sequence.
type Key struct {
	Priority int
	Tie      int
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	if k.Priority != o.Priority {
		return k.Priority < o.Priority
	}
	return k.Tie < o.Tie
}

// Frontier is a min-priority queue over node indices in [0, n).
// Each node is present at most once: pushing a node that is already queued
// drops its stale entry and reinserts it under the new key. A dense
// node→slot table replaces a map, since node indices are dense.
type Frontier struct {
	heap entryHeap
}

type entry struct {
	id  int
	key Key
}

// entryHeap implements heap.Interface and keeps slot[id] equal to the
// entry's position in items, or -1 when absent.
type entryHeap struct {
	items []entry
	slot  []int
}

// NewFrontier returns an empty frontier for node indices in [0, n).
func NewFrontier(n int) *Frontier {
	f := &Frontier{heap: entryHeap{
		items: make([]entry, 0, n),
		slot:  make([]int, n),
	}}
	for i := range f.heap.slot {
		f.heap.slot[i] = -1
	}
	return f
}

// Len returns the number of queued nodes.
func (f *Frontier) Len() int { return len(f.heap.items) }

// Contains reports whether id is queued.
func (f *Frontier) Contains(id int) bool { return f.heap.slot[id] >= 0 }

// Push queues id under k, replacing any entry id already has.
func (f *Frontier) Push(id int, k Key) {
	if at := f.heap.slot[id]; at >= 0 {
		heap.Remove(&f.heap, at)
	}
	heap.Push(&f.heap, entry{id: id, key: k})
}

// Pop removes and returns the minimum entry. ok is false on an empty frontier.
func (f *Frontier) Pop() (id int, k Key, ok bool) {
	if len(f.heap.items) == 0 {
		return 0, Key{}, false
	}
	e := heap.Pop(&f.heap).(entry)
	return e.id, e.key, true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier) Peek() (id int, k Key, ok bool) {
	if len(f.heap.items) == 0 {
		return 0, Key{}, false
	}
	e := f.heap.items[0]
	return e.id, e.key, true
}

// Reset empties the frontier, keeping its capacity.
func (f *Frontier) Reset() {
	for _, e := range f.heap.items {
		f.heap.slot[e.id] = -1
	}
	f.heap.items = f.heap.items[:0]
}

func (h entryHeap) Len() int           { return len(h.items) }
func (h entryHeap) Less(i, j int) bool { return h.items[i].key.Less(h.items[j].key) }
func (h entryHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.slot[h.items[i].id] = i
	h.slot[h.items[j].id] = j
}

func (h *entryHeap) Push(x interface{}) {
	e := x.(entry)
	h.slot[e.id] = len(h.items)
	h.items = append(h.items, e)
}

func (h *entryHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	h.slot[e.id] = -1
	return e
}
