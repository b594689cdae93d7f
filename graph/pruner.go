package graph

import (
	"sort"

	"github.com/somework/p2p-path-finder-sub001/money"
)

// Measure names which capacity dimension of a Segment governs pruning and
// sort order.
type Measure int

const (
	// MeasureBase ranks segments by their Base range.
	MeasureBase Measure = iota
	// MeasureQuote ranks segments by their Quote range.
	MeasureQuote
	// MeasureGrossBase ranks segments by their GrossBase range.
	MeasureGrossBase
)

func (m Measure) rangeOf(s Segment) Range {
	return m.RangeOf(s)
}

// RangeOf returns the Range of s corresponding to measure m.
func (m Measure) RangeOf(s Segment) Range {
	switch m {
	case MeasureQuote:
		return s.Quote
	case MeasureGrossBase:
		return s.GrossBase
	default:
		return s.Base
	}
}

// Pruner filters an edge's segments down to the ones with usable
// headroom for a given measure, and orders them mandatory-first, then by
// descending capacity.
type Pruner struct{}

// NewPruner returns a ready-to-use Pruner. It carries no state.
func NewPruner() Pruner { return Pruner{} }

// Prune returns the subset of segments relevant to measure, sorted
// stably: mandatory before optional, then by the measure's Max
// descending, then by its Min descending.
//
// If the mandatory segments' total already consumes the edge's entire
// capacity on measure (no optional headroom remains), optional segments
// are discarded outright.
func (p Pruner) Prune(segments []Segment, measure Measure) []Segment {
	mandatoryTotal, capacityMax, ok := p.totals(segments, measure)
	noHeadroom := ok && money.Compare(mandatoryTotal, capacityMax) >= 0

	kept := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if !s.IsMandatory && noHeadroom {
			continue
		}
		if !s.IsMandatory && measure.rangeOf(s).Max.IsZero() {
			continue
		}
		kept = append(kept, s)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].IsMandatory != kept[j].IsMandatory {
			return kept[i].IsMandatory
		}
		ri, rj := measure.rangeOf(kept[i]), measure.rangeOf(kept[j])
		if c := money.Compare(ri.Max, rj.Max); c != 0 {
			return c > 0
		}

		return money.Compare(ri.Min, rj.Min) > 0
	})

	return kept
}

// totals sums the mandatory segments' measure and reports the edge's
// overall capacity ceiling on that measure (the sum of the mandatory and
// optional segments' Max, which equals the full edge capacity by
// construction).
func (p Pruner) totals(segments []Segment, measure Measure) (mandatoryTotal, capacityMax money.Money, ok bool) {
	var mandatorySum, optionalSum *money.Money
	accumulate := func(acc **money.Money, v money.Money) {
		if *acc == nil {
			cp := v
			*acc = &cp

			return
		}
		sum, err := money.Add(**acc, v)
		if err == nil {
			*acc = &sum
		}
	}
	for _, s := range segments {
		r := measure.rangeOf(s)
		if s.IsMandatory {
			accumulate(&mandatorySum, r.Max)
		} else {
			accumulate(&optionalSum, r.Max)
		}
	}
	if mandatorySum == nil {
		return money.Money{}, money.Money{}, false
	}
	total := *mandatorySum
	if optionalSum != nil {
		sum, err := money.Add(*mandatorySum, *optionalSum)
		if err == nil {
			total = sum
		}
	}

	return *mandatorySum, total, true
}
