package search

import "container/heap"

// openItem is one entry in the open set: a pending state plus its
// precomputed order key.
type openItem struct {
	state *searchState
	key   PathOrderKey
}

// openQueue is a container/heap.Interface min-heap over openItem, ordered
// by strategy.Compare(key, key) ascending — the same data structure the
// teacher's dijkstra package uses for its node priority queue.
type openQueue struct {
	items    []openItem
	strategy PathOrderStrategy
}

func newOpenQueue(strategy PathOrderStrategy) *openQueue {
	return &openQueue{strategy: strategy}
}

func (q *openQueue) Len() int { return len(q.items) }
func (q *openQueue) Less(i, j int) bool {
	return q.strategy.Compare(q.items[i].key, q.items[j].key) < 0
}
func (q *openQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *openQueue) Push(x interface{}) {
	q.items = append(q.items, x.(openItem))
}
func (q *openQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}

// pushState pushes a state with its key onto the open set.
func (q *openQueue) pushState(s *searchState, key PathOrderKey) {
	heap.Push(q, openItem{state: s, key: key})
}

// popState pops the minimal-key state, or returns ok=false if empty.
func (q *openQueue) popState() (*searchState, PathOrderKey, bool) {
	if q.Len() == 0 {
		return nil, PathOrderKey{}, false
	}
	item := heap.Pop(q).(openItem)

	return item.state, item.key, true
}

// resultItem is one entry in the bounded result heap: a materialized
// candidate plus its order key.
type resultItem struct {
	candidate CandidatePath
	key       PathOrderKey
}

// resultQueue is a container/heap.Interface max-heap (by the same total
// order) bounded at topK: when full, a new entry only displaces the
// current maximum if it precedes the maximum under the order.
type resultQueue struct {
	items    []resultItem
	strategy PathOrderStrategy
	topK     int
}

func newResultQueue(strategy PathOrderStrategy, topK int) *resultQueue {
	return &resultQueue{strategy: strategy, topK: topK}
}

func (q *resultQueue) Len() int { return len(q.items) }
func (q *resultQueue) Less(i, j int) bool {
	// Max-heap: item with the greatest key floats to the top (index 0).
	return q.strategy.Compare(q.items[i].key, q.items[j].key) > 0
}
func (q *resultQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *resultQueue) Push(x interface{}) {
	q.items = append(q.items, x.(resultItem))
}
func (q *resultQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}

// offer attempts to insert candidate into the bounded result set. When
// not yet full, it is always accepted. When full, it is accepted only if
// it precedes the current worst (max) entry under the total order, which
// is then evicted.
func (q *resultQueue) offer(candidate CandidatePath, key PathOrderKey) {
	if q.topK <= 0 {
		return
	}
	if q.Len() < q.topK {
		heap.Push(q, resultItem{candidate: candidate, key: key})

		return
	}
	if q.Len() == 0 {
		return
	}
	worst := q.items[0]
	if q.strategy.Compare(key, worst.key) < 0 {
		heap.Pop(q)
		heap.Push(q, resultItem{candidate: candidate, key: key})
	}
}

// max returns the current worst (maximum) key in the result set, and
// whether the set is at capacity.
func (q *resultQueue) max() (PathOrderKey, bool) {
	if q.Len() < q.topK || q.Len() == 0 {
		return PathOrderKey{}, false
	}

	return q.items[0].key, true
}

// sorted returns the result set's candidates ordered ascending (best
// first) under the same total order.
func (q *resultQueue) sorted() []CandidatePath {
	items := make([]resultItem, len(q.items))
	copy(items, q.items)
	// Simple insertion sort by ascending key; result sets are small
	// (bounded by topK), so O(topK^2) is negligible.
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && q.strategy.Compare(items[j].key, items[j-1].key) < 0 {
			items[j], items[j-1] = items[j-1], items[j]
			j--
		}
	}
	out := make([]CandidatePath, len(items))
	for i, it := range items {
		out[i] = it.candidate
	}

	return out
}
