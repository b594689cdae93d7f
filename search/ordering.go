// Package search implements PathSearchEngine: a deterministic best-first
// search over a graph.Graph that discovers up to topK lowest-cost
// conversion paths from a source currency to a target currency, subject
// to hop limits, tolerance-bounded amount propagation, dominance
// pruning, and guard-rail enforcement.
package search

import (
	"errors"
	"strings"

	"github.com/somework/p2p-path-finder-sub001/decimal"
)

// ErrEmptyRouteSignature indicates a RouteSignature was built from zero
// nodes, or one of its nodes was blank.
var ErrEmptyRouteSignature = errors.New("search: route signature must have at least one non-blank node")

// PathCost wraps a scale-18 Decimal cost value. Lower is better.
type PathCost struct {
	d decimal.Decimal
}

// NewPathCost normalizes d to decimal.Scale and wraps it.
func NewPathCost(d decimal.Decimal) (PathCost, error) {
	norm, err := decimal.Normalize(d, decimal.Scale)
	if err != nil {
		return PathCost{}, err
	}

	return PathCost{d: norm}, nil
}

// Decimal returns the underlying cost value.
func (c PathCost) Decimal() decimal.Decimal { return c.d }

// Compare returns -1, 0, +1 as c<other, c==other, c>other.
func (c PathCost) Compare(other PathCost) int { return decimal.Compare(c.d, other.d) }

// RouteSignature is the ordered, non-empty chain of currency nodes a
// candidate path visits, joined by "->".
type RouteSignature struct {
	nodes []string
	s     string
}

// NewRouteSignature validates nodes are non-empty and none are blank,
// then joins them.
func NewRouteSignature(nodes []string) (RouteSignature, error) {
	if len(nodes) == 0 {
		return RouteSignature{}, ErrEmptyRouteSignature
	}
	for _, n := range nodes {
		if strings.TrimSpace(n) == "" {
			return RouteSignature{}, ErrEmptyRouteSignature
		}
	}
	cp := make([]string, len(nodes))
	copy(cp, nodes)

	return RouteSignature{nodes: cp, s: strings.Join(cp, "->")}, nil
}

// String returns the joined "from->to->..." representation.
func (r RouteSignature) String() string { return r.s }

// Nodes returns the underlying node chain.
func (r RouteSignature) Nodes() []string {
	cp := make([]string, len(r.nodes))
	copy(cp, r.nodes)

	return cp
}

// Compare orders signatures byte-lexicographically on their joined form.
func (r RouteSignature) Compare(other RouteSignature) int {
	return strings.Compare(r.s, other.s)
}

// PathOrderKey is the total-order key for candidates in the open set and
// result heap: (cost, hops, routeSignature, insertionOrder).
type PathOrderKey struct {
	Cost            PathCost
	Hops            int
	RouteSignature  RouteSignature
	InsertionOrder  uint64
}

// PathOrderStrategy is the pluggable comparator extension point named in
// the external interfaces; DefaultOrder implements the engine's built-in
// total order.
type PathOrderStrategy interface {
	Compare(lhs, rhs PathOrderKey) int
}

// defaultOrderStrategy implements (cost asc, hops asc, routeSignature
// asc, insertionOrder asc).
type defaultOrderStrategy struct{}

// DefaultOrder is the engine's built-in PathOrderStrategy.
var DefaultOrder PathOrderStrategy = defaultOrderStrategy{}

// Compare implements PathOrderStrategy.
func (defaultOrderStrategy) Compare(lhs, rhs PathOrderKey) int {
	if c := lhs.Cost.Compare(rhs.Cost); c != 0 {
		return c
	}
	if lhs.Hops != rhs.Hops {
		if lhs.Hops < rhs.Hops {
			return -1
		}

		return 1
	}
	if c := lhs.RouteSignature.Compare(rhs.RouteSignature); c != 0 {
		return c
	}
	if lhs.InsertionOrder != rhs.InsertionOrder {
		if lhs.InsertionOrder < rhs.InsertionOrder {
			return -1
		}

		return 1
	}

	return 0
}
