package orderbook

import (
	"sort"
	"sync"
)

// Book is a mutex-guarded collection of Orders. Construct via NewBook;
// Add appends an order and bumps Revision. Readers (Orders, Filtered)
// receive copies, so a slice already handed to the graph builder does not
// change when the book is appended to later.
type Book struct {
	mu       sync.RWMutex
	orders   []Order
	revision uint64
}

// NewBook constructs a Book from an initial set of orders.
func NewBook(orders ...Order) *Book {
	cp := make([]Order, len(orders))
	copy(cp, orders)

	return &Book{orders: cp, revision: 1}
}

// Orders returns a defensive copy of the book's orders, in insertion
// order.
func (b *Book) Orders() []Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cp := make([]Order, len(b.orders))
	copy(cp, b.orders)

	return cp
}

// Filtered returns the subset of orders accepted by every filter, sorted
// by (From, To, order ID) for deterministic downstream graph construction.
func (b *Book) Filtered(filters ...OrderFilter) []Order {
	orders := b.Orders()
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		accepted := true
		for _, f := range filters {
			if f != nil && !f.Accepts(o) {
				accepted = false
				break
			}
		}
		if accepted {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From() != out[j].From() {
			return out[i].From() < out[j].From()
		}
		if out[i].To() != out[j].To() {
			return out[i].To() < out[j].To()
		}

		return out[i].ID().String() < out[j].ID().String()
	})

	return out
}

// Add appends an order and bumps the revision counter.
func (b *Book) Add(o Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append(b.orders, o)
	b.revision++
}

// Revision returns a monotonically increasing counter that changes
// whenever the book's contents change. PathSearchService uses it as part
// of its singleflight dedup key so that a stale in-flight search is never
// conflated with a request against updated contents.
func (b *Book) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.revision
}

// Len returns the number of orders currently in the book.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.orders)
}
