package search

import (
	"errors"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// errRangeCollapsed indicates an edge's output-side clamp left no
// admissible amount; treated as an absence (edge skipped), not surfaced
// to the caller.
var errRangeCollapsed = errors.New("search: amount range collapsed after clamping")

// measureFor returns the capacity dimension that matches edge.From's own
// currency: a BUY edge's From is the order's base, a SELL edge's From is
// the order's quote (see graph.Edge and the Order.From/To contract), so
// this is also the dimension any incoming amountRange must already be
// expressed in.
func measureFor(side orderbook.Side) graph.Measure {
	if side == orderbook.Buy {
		return graph.MeasureBase
	}

	return graph.MeasureQuote
}

// edgeSupportsAmount intersects rng with the edge's pruned capacity on
// measureFor(edge.Side), returning ok=false when no overlap exists across
// any segment.
func edgeSupportsAmount(edge *graph.Edge, rng *AmountRange, pruner graph.Pruner) (*AmountRange, bool) {
	if rng == nil {
		return nil, false
	}
	measure := measureFor(edge.Side)
	segments := pruner.Prune(edge.Segments, measure)

	// Optional segments span [0, remainder] above the mandatory floor;
	// Prune sorts mandatory segments first, so the floor is read from
	// segments[0] and added to each optional segment before intersecting.
	var floor *money.Money
	if len(segments) > 0 && segments[0].IsMandatory {
		f := measure.RangeOf(segments[0]).Min
		floor = &f
	}

	var best *AmountRange
	for _, seg := range segments {
		segRange := measure.RangeOf(seg)
		if !seg.IsMandatory && floor != nil {
			shiftedMin, errMin := money.Add(segRange.Min, *floor)
			shiftedMax, errMax := money.Add(segRange.Max, *floor)
			if errMin != nil || errMax != nil {
				continue
			}
			segRange = graph.Range{Min: shiftedMin, Max: shiftedMax}
		}
		lo := rng.Min
		if money.Compare(segRange.Min, lo) > 0 {
			lo = segRange.Min
		}
		hi := rng.Max
		if money.Compare(segRange.Max, hi) < 0 {
			hi = segRange.Max
		}
		if money.Compare(lo, hi) > 0 {
			continue
		}
		if best == nil || money.Compare(hi, best.Max) > 0 {
			cand := AmountRange{Min: lo, Max: hi}
			best = &cand
		}
	}

	return best, best != nil
}

// calculateNextRange converts a feasible input range across edge,
// applying the order's effective rate in the order's natural direction
// (BUY multiplies base into quote; SELL divides quote back into base),
// then clamps the result to the edge's output-side capacity.
func calculateNextRange(edge *graph.Edge, feasible *AmountRange) (*AmountRange, error) {
	var lo, hi money.Money
	var err error
	switch edge.Side {
	case orderbook.Buy:
		lo, err = edge.Rate.Convert(feasible.Min)
		if err != nil {
			return nil, err
		}
		hi, err = edge.Rate.Convert(feasible.Max)
		if err != nil {
			return nil, err
		}
	default: // Sell
		inv, err := edge.Rate.Invert()
		if err != nil {
			return nil, err
		}
		lo, err = inv.Convert(feasible.Min)
		if err != nil {
			return nil, err
		}
		hi, err = inv.Convert(feasible.Max)
		if err != nil {
			return nil, err
		}
	}
	if money.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	outMin, outMax := edge.QuoteCapacity.Min, edge.QuoteCapacity.Max
	if edge.Side == orderbook.Sell {
		outMin, outMax = edge.BaseCapacity.Min, edge.BaseCapacity.Max
	}
	if money.Compare(outMin, lo) > 0 {
		lo = outMin
	}
	if money.Compare(outMax, hi) < 0 {
		hi = outMax
	}
	if money.Compare(lo, hi) > 0 {
		return nil, errRangeCollapsed
	}

	return &AmountRange{Min: lo, Max: hi}, nil
}

// toleranceAmplifier returns 1/(1-tolerance) at decimal.Scale, clamped so
// the divisor never reaches zero: a tolerance within epsilon of 1 is
// capped at 18 nines.
func toleranceAmplifier(tolerance decimal.Decimal) (decimal.Decimal, error) {
	one := decimal.One(decimal.Scale)
	capped := tolerance
	ceiling := decimal.MustNewFromString(maxToleranceLiteral, decimal.Scale)
	if decimal.Compare(tolerance, ceiling) >= 0 {
		capped = ceiling
	}
	denom, err := decimal.Sub(one, capped, decimal.Scale)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.Div(one, denom, decimal.Scale)
}

// maxToleranceLiteral is 1 - 1e-18, the cap applied before inverting
// (1-tolerance) so the amplifier never divides by (near) zero.
const maxToleranceLiteral = "0.999999999999999999"
