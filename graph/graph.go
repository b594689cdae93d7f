// Package graph transforms an orderbook.Book into a directed, weighted
// conversion graph with per-edge capacity segments, and provides the
// SegmentPruner used by the search engine to filter those segments by
// available headroom.
//
// Node iteration is always lexicographic by currency code, mirroring
// core.Graph's deterministic Vertices()/Edges() ordering in the graph
// library this package is adapted from, and within a node, Builder sorts
// outgoing edges by their order's ID rather than leaving them in
// input-slice order, so that two builds from the same (possibly
// differently-ordered) input produce byte-identical output.
package graph

import (
	"sort"
	"sync"

	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// Range is an inclusive [Min, Max] span of Money in one currency.
type Range struct {
	Min money.Money
	Max money.Money
}

// Segment is a capacity slice of an Edge: either the mandatory portion
// required to clear an order's minimum fill after fees, or an optional
// elastic portion above it.
type Segment struct {
	IsMandatory bool
	Base        Range
	Quote       Range
	GrossBase   Range
}

// Edge is one directed conversion opportunity: taking the order's
// From currency in and receiving To currency out.
type Edge struct {
	From  string
	To    string
	Side  orderbook.Side
	Order orderbook.Order
	Rate  money.ExchangeRate

	BaseCapacity      Range
	QuoteCapacity     Range
	GrossBaseCapacity Range

	Segments []Segment
}

// Node is one currency vertex with its ordered outgoing edges.
type Node struct {
	Currency string
	Edges    []*Edge
}

// Graph is the directed, weighted conversion graph built from an
// orderbook.Book. It is immutable once returned by Builder.Build;
// concurrent reads from multiple search invocations are safe.
type Graph struct {
	mu    sync.RWMutex
	nodes map[string]*Node
	keys  []string // sorted currency codes, kept alongside nodes for O(1) ordered iteration
}

// newGraph returns an empty Graph.
func newGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Node returns the node for currency, or nil if absent.
func (g *Graph) Node(currency string) *Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[currency]
}

// Currencies returns every node's currency code in lexicographic order.
func (g *Graph) Currencies() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.keys))
	copy(out, g.keys)

	return out
}

// NodeCount returns the number of distinct currencies in the graph.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.keys)
}

func (g *Graph) getOrCreateNode(currency string) *Node {
	if n, ok := g.nodes[currency]; ok {
		return n
	}
	n := &Node{Currency: currency}
	g.nodes[currency] = n
	g.keys = append(g.keys, currency)
	sort.Strings(g.keys)

	return n
}
