package graph

import (
	"fmt"
	"sort"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// Builder turns an ordered slice of orderbook.Order into a Graph,
// computing each edge's capacity segments per the fee-application matrix:
// BUY edges gross up the base leg by the order's base fee and net the
// quote leg down by its quote fee; SELL edges net the base leg down by
// its base fee and gross up the quote leg by its quote fee.
type Builder struct{}

// NewBuilder returns a ready-to-use Builder. Builder carries no state; a
// single value may build any number of graphs.
func NewBuilder() Builder { return Builder{} }

// Build constructs a Graph from orders. Orders should already have
// passed through any OrderFilter (see orderbook.Book.Filtered) before
// being passed here.
//
// Each node's outgoing edges are sorted by their order's ID once every
// order has been placed, rather than left in append (input-slice) order:
// an order's ID is fixed at its own construction and does not move when
// the caller permutes orders, so this makes a node's edge order — and
// therefore the search engine's expansion order — depend only on the
// order set, not on the order of the input slice.
func (Builder) Build(orders []orderbook.Order) (*Graph, error) {
	g := newGraph()
	touched := make(map[string]struct{})
	for _, o := range orders {
		edge, err := buildEdge(o)
		if err != nil {
			return nil, fmt.Errorf("graph: build edge for order %s: %w", o.ID(), err)
		}
		from := g.getOrCreateNode(edge.From)
		g.getOrCreateNode(edge.To)
		from.Edges = append(from.Edges, edge)
		touched[edge.From] = struct{}{}
	}

	for currency := range touched {
		node := g.nodes[currency]
		sort.Slice(node.Edges, func(i, j int) bool {
			return node.Edges[i].Order.ID().String() < node.Edges[j].Order.ID().String()
		})
	}

	return g, nil
}

func feePolicyOf(o orderbook.Order) orderbook.FeePolicy {
	if fp := o.FeePolicy(); fp != nil {
		return fp
	}

	return orderbook.NoFeePolicy{}
}

// fill is the net/gross accounting for one base-currency fill amount.
type fill struct {
	netBase   money.Money
	quote     money.Money
	grossBase money.Money
}

func computeFill(o orderbook.Order, baseAmt money.Money) (fill, error) {
	rawQuote, err := o.CalculateQuoteAmount(baseAmt)
	if err != nil {
		return fill{}, fmt.Errorf("calculate quote amount: %w", err)
	}
	fees, err := feePolicyOf(o).Calculate(o.Side(), baseAmt, rawQuote)
	if err != nil {
		return fill{}, fmt.Errorf("fee policy: %w", err)
	}
	if err := fees.Validate(o.Pair()); err != nil {
		return fill{}, err
	}

	baseFee := zeroOf(baseAmt)
	if fees.Base != nil {
		baseFee = *fees.Base
	}
	quoteFee := zeroOf(rawQuote)
	if fees.Quote != nil {
		quoteFee = *fees.Quote
	}

	switch o.Side() {
	case orderbook.Buy:
		grossBase, err := money.Add(baseAmt, baseFee)
		if err != nil {
			return fill{}, err
		}
		netQuote, err := money.Sub(rawQuote, quoteFee)
		if err != nil {
			return fill{}, err
		}

		return fill{netBase: baseAmt, quote: netQuote, grossBase: grossBase}, nil
	case orderbook.Sell:
		netBase, err := money.Sub(baseAmt, baseFee)
		if err != nil {
			return fill{}, err
		}
		grossQuote, err := money.Add(rawQuote, quoteFee)
		if err != nil {
			return fill{}, err
		}

		return fill{netBase: netBase, quote: grossQuote, grossBase: baseAmt}, nil
	default:
		return fill{}, fmt.Errorf("%w: %d", orderbook.ErrInvalidSide, o.Side())
	}
}

func buildEdge(o orderbook.Order) (*Edge, error) {
	minFill, err := computeFill(o, o.Bounds().Min())
	if err != nil {
		return nil, fmt.Errorf("min fill: %w", err)
	}
	maxFill, err := computeFill(o, o.Bounds().Max())
	if err != nil {
		return nil, fmt.Errorf("max fill: %w", err)
	}

	edge := &Edge{
		From:  o.From(),
		To:    o.To(),
		Side:  o.Side(),
		Order: o,
		Rate:  o.EffectiveRate(),

		BaseCapacity:      Range{Min: minFill.netBase, Max: maxFill.netBase},
		QuoteCapacity:     Range{Min: minFill.quote, Max: maxFill.quote},
		GrossBaseCapacity: Range{Min: minFill.grossBase, Max: maxFill.grossBase},
	}

	segments, err := buildSegments(minFill, maxFill)
	if err != nil {
		return nil, err
	}
	edge.Segments = segments

	return edge, nil
}

func buildSegments(minFill, maxFill fill) ([]Segment, error) {
	var segments []Segment

	mandatoryPresent := minFill.netBase.Amount().IsPositive()
	if mandatoryPresent {
		segments = append(segments, Segment{
			IsMandatory: true,
			Base:        Range{Min: minFill.netBase, Max: minFill.netBase},
			Quote:       Range{Min: minFill.quote, Max: minFill.quote},
			GrossBase:   Range{Min: minFill.grossBase, Max: minFill.grossBase},
		})
	}

	baseRemainder, err := money.Sub(maxFill.netBase, minFill.netBase)
	hasRemainder := err == nil && baseRemainder.Amount().IsPositive()
	if hasRemainder {
		quoteRemainder, err := money.Sub(maxFill.quote, minFill.quote)
		if err != nil {
			return nil, fmt.Errorf("quote remainder: %w", err)
		}
		grossRemainder, err := money.Sub(maxFill.grossBase, minFill.grossBase)
		if err != nil {
			return nil, fmt.Errorf("gross base remainder: %w", err)
		}
		zeroBase := zeroOf(baseRemainder)
		zeroQuote := zeroOf(quoteRemainder)
		zeroGross := zeroOf(grossRemainder)
		segments = append(segments, Segment{
			IsMandatory: false,
			Base:        Range{Min: zeroBase, Max: baseRemainder},
			Quote:       Range{Min: zeroQuote, Max: quoteRemainder},
			GrossBase:   Range{Min: zeroGross, Max: grossRemainder},
		})
	}

	if len(segments) == 0 {
		zeroBase := zeroOf(maxFill.netBase)
		zeroQuote := zeroOf(maxFill.quote)
		zeroGross := zeroOf(maxFill.grossBase)
		segments = append(segments, Segment{
			IsMandatory: false,
			Base:        Range{Min: zeroBase, Max: zeroBase},
			Quote:       Range{Min: zeroQuote, Max: zeroQuote},
			GrossBase:   Range{Min: zeroGross, Max: zeroGross},
		})
	}

	return segments, nil
}

func zeroOf(m money.Money) money.Money {
	return money.MustNew(m.Currency(), decimal.Zero(m.Scale()), m.Scale())
}
