package core

import "container/heap"

// Frontier is the open set of discovered-but-not-yet-expanded nodes.
// Ordering policy is what distinguishes the blind strategies: FIFO for
// breadth-first, LIFO for depth-first.
type Frontier[S comparable] interface {
	// Push adds a node to the frontier.
	Push(n *Node[S])
	// Pop removes and returns the next node per the ordering policy.
	// Pop on an empty frontier returns nil.
	Pop() *Node[S]
	// Len reports the number of nodes currently in the frontier.
	Len() int
}

// NewQueue returns a FIFO frontier (breadth-first ordering).
func NewQueue[S comparable]() Frontier[S] { return &queue[S]{} }

// NewStack returns a LIFO frontier (depth-first ordering).
func NewStack[S comparable]() Frontier[S] { return &stack[S]{} }

// queue is a slice-backed FIFO frontier.
type queue[S comparable] struct {
	items []*Node[S]
}

func (q *queue[S]) Push(n *Node[S]) { q.items = append(q.items, n) }

func (q *queue[S]) Pop() *Node[S] {
	if len(q.items) == 0 {
		return nil
	}
	n := q.items[0]
	q.items = q.items[1:]

	return n
}

func (q *queue[S]) Len() int { return len(q.items) }

// stack is a slice-backed LIFO frontier.
type stack[S comparable] struct {
	items []*Node[S]
}

func (s *stack[S]) Push(n *Node[S]) { s.items = append(s.items, n) }

func (s *stack[S]) Pop() *Node[S] {
	if len(s.items) == 0 {
		return nil
	}
	last := len(s.items) - 1
	n := s.items[last]
	s.items = s.items[:last]

	return n
}

func (s *stack[S]) Len() int { return len(s.items) }

// PriorityFrontier is a min-heap open set keyed by (priority, tie,
// insertion sequence). It serves UCS (priority = g), Greedy
// (priority = h), and A* (priority = g+h, tie = h).
//
// Decrease-key is implemented lazily: rediscovering a state at a lower
// cost pushes a fresh entry, and the stale one is skipped when popped
// because the closed set already holds a ≤ cost for its state. This is
// the same strategy as a lazy Dijkstra heap: up to one heap entry per
// generated node, O(log N) per push/pop.
type PriorityFrontier[S comparable] struct {
	h   pqHeap[S]
	seq uint64
}

// NewPriorityFrontier returns an empty min-priority frontier.
func NewPriorityFrontier[S comparable]() *PriorityFrontier[S] {
	return &PriorityFrontier[S]{}
}

// Push inserts n with the given primary priority and secondary
// tie-break value. Insertion order is the final tie-break, so equal
// (priority, tie) entries pop in FIFO order.
func (f *PriorityFrontier[S]) Push(n *Node[S], priority, tie float64) {
	f.seq++
	heap.Push(&f.h, &pqEntry[S]{node: n, priority: priority, tie: tie, seq: f.seq})
}

// Pop removes and returns the minimum entry, or nil when empty.
func (f *PriorityFrontier[S]) Pop() *Node[S] {
	if f.h.Len() == 0 {
		return nil
	}

	return heap.Pop(&f.h).(*pqEntry[S]).node
}

// Len reports the number of entries, including any stale duplicates.
func (f *PriorityFrontier[S]) Len() int { return f.h.Len() }

// pqEntry pairs a node with its ordering keys.
type pqEntry[S comparable] struct {
	node     *Node[S]
	priority float64 // primary ordering key
	tie      float64 // secondary key, compared on equal priority
	seq      uint64  // insertion order, compared last
}

// pqHeap implements heap.Interface over *pqEntry, smallest first.
type pqHeap[S comparable] []*pqEntry[S]

func (h pqHeap[S]) Len() int { return len(h) }

func (h pqHeap[S]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	if h[i].tie != h[j].tie {
		return h[i].tie < h[j].tie
	}

	return h[i].seq < h[j].seq
}

func (h pqHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[S]) Push(x interface{}) { *h = append(*h, x.(*pqEntry[S])) }

func (h *pqHeap[S]) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}
