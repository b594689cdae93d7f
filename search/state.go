package search

import (
	"fmt"
	"strings"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// AmountRange is the [Min, Max] window of money a state's incoming
// amount is known to fall within at its current node.
type AmountRange struct {
	Min money.Money
	Max money.Money
}

// PathEdge is one traversed hop in a CandidatePath.
type PathEdge struct {
	From           string
	To             string
	Order          orderbook.Order
	Rate           money.ExchangeRate
	OrderSide      orderbook.Side
	ConversionRate decimal.Decimal
}

// CandidatePath is a discovered chain of hops from source to target,
// together with its accumulated cost and forward conversion product.
type CandidatePath struct {
	Cost          decimal.Decimal
	Product       decimal.Decimal
	Hops          int
	Edges         []PathEdge
	AmountRange   *AmountRange
	DesiredAmount *money.Money
}

// searchState is the engine's internal open-set/result-heap element.
// visited is the set of currencies already on this state's path, for O(1)
// cycle checks; the path's order is carried by edges.
type searchState struct {
	node          string
	cost          decimal.Decimal
	product       decimal.Decimal
	hops          int
	edges         []PathEdge
	amountRange   *AmountRange
	desiredAmount *money.Money
	visited       map[string]struct{}
	insertionOrd  uint64
}

func (s *searchState) hasVisited(node string) bool {
	_, ok := s.visited[node]

	return ok
}

func (s *searchState) withVisited(node string) map[string]struct{} {
	out := make(map[string]struct{}, len(s.visited)+1)
	for k := range s.visited {
		out[k] = struct{}{}
	}
	out[node] = struct{}{}

	return out
}

// signature computes the dominance-registry key for this state, combining
// its amount range (normalized to the common max scale) and its desired
// amount, e.g. "range:USD:1.500:3.000:3|desired:USD:2.250:3" or
// "range:null|desired:null".
func (s *searchState) signature() string {
	var b strings.Builder
	if s.amountRange == nil {
		b.WriteString("range:null")
	} else {
		scale := s.amountRange.Min.Scale()
		if s.amountRange.Max.Scale() > scale {
			scale = s.amountRange.Max.Scale()
		}
		minAmt, _ := decimal.Normalize(s.amountRange.Min.Amount(), scale)
		maxAmt, _ := decimal.Normalize(s.amountRange.Max.Amount(), scale)
		fmt.Fprintf(&b, "range:%s:%s:%s:%d",
			s.amountRange.Min.Currency(), minAmt.String(), maxAmt.String(), scale)
	}
	b.WriteString("|")
	if s.desiredAmount == nil {
		b.WriteString("desired:null")
	} else {
		fmt.Fprintf(&b, "desired:%s:%s:%d",
			s.desiredAmount.Currency(), s.desiredAmount.Amount().String(), s.desiredAmount.Scale())
	}

	return b.String()
}

func (s *searchState) routeSignature() (RouteSignature, error) {
	nodes := make([]string, 0, len(s.edges)+1)
	if len(s.edges) == 0 {
		nodes = append(nodes, s.node)
	} else {
		nodes = append(nodes, s.edges[0].From)
		for _, e := range s.edges {
			nodes = append(nodes, e.To)
		}
	}

	return NewRouteSignature(nodes)
}

func (s *searchState) orderKey() (PathOrderKey, error) {
	cost, err := NewPathCost(s.cost)
	if err != nil {
		return PathOrderKey{}, err
	}
	sig, err := s.routeSignature()
	if err != nil {
		return PathOrderKey{}, err
	}

	return PathOrderKey{Cost: cost, Hops: s.hops, RouteSignature: sig, InsertionOrder: s.insertionOrd}, nil
}

func (s *searchState) toCandidate() CandidatePath {
	return CandidatePath{
		Cost:          s.cost,
		Product:       s.product,
		Hops:          s.hops,
		Edges:         append([]PathEdge(nil), s.edges...),
		AmountRange:   s.amountRange,
		DesiredAmount: s.desiredAmount,
	}
}

// searchStateRecord is the dominance registry's stored comparison key for
// one node: (cost, hops, signature).
type searchStateRecord struct {
	cost      decimal.Decimal
	hops      int
	signature string
}

// dominates reports whether r dominates other: equal-or-lower cost and
// equal-or-fewer hops, for the same signature (callers only compare
// records already known to share a signature).
func (r searchStateRecord) dominates(other searchStateRecord) bool {
	return decimal.Compare(r.cost, other.cost) <= 0 && r.hops <= other.hops
}
