package search

import (
	"errors"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// BoundScale is the minimum working scale for the spend-window
// computation, regardless of the spend amount's own declared scale.
const BoundScale = 8

// ErrZeroSpend indicates a spend amount of exactly zero was supplied,
// which can never satisfy an edge's mandatory floor.
var ErrZeroSpend = errors.New("search: spend amount must be > 0")

// Seed is the initial per-edge spend estimate the engine bootstraps
// its search from: the pre-fee net amount, its gross (fee-inclusive)
// equivalent, and a hard ceiling the materializer must never exceed.
type Seed struct {
	Net          money.Money
	Gross        money.Money
	GrossCeiling money.Money
}

// AnalyzeEdgeSpend derives the initial seed for spend flowing into edge,
// given the caller's tolerance window. It returns ok=false (not an
// error) when no feasible seed exists within the edge's capacity.
func AnalyzeEdgeSpend(spend money.Money, tolerance money.ToleranceWindow, edge *graph.Edge) (Seed, bool, error) {
	if !spend.Amount().IsPositive() {
		return Seed{}, false, ErrZeroSpend
	}
	scale := spend.Scale()
	if scale < BoundScale {
		scale = BoundScale
	}

	one := decimal.One(scale)
	minTol, err := decimal.Normalize(tolerance.Minimum(), scale)
	if err != nil {
		return Seed{}, false, err
	}
	maxTol, err := decimal.Normalize(tolerance.Maximum(), scale)
	if err != nil {
		return Seed{}, false, err
	}
	minFactor, err := decimal.Sub(one, minTol, scale)
	if err != nil {
		return Seed{}, false, err
	}
	maxFactor, err := decimal.Add(one, maxTol, scale)
	if err != nil {
		return Seed{}, false, err
	}
	spendAtScale, err := decimal.Normalize(spend.Amount(), scale)
	if err != nil {
		return Seed{}, false, err
	}
	minAmt, err := decimal.Mul(spendAtScale, minFactor, scale)
	if err != nil {
		return Seed{}, false, err
	}
	maxAmt, err := decimal.Mul(spendAtScale, maxFactor, scale)
	if err != nil {
		return Seed{}, false, err
	}
	minSpend, err := money.New(spend.Currency(), minAmt, scale)
	if err != nil {
		return Seed{}, false, err
	}
	maxSpend, err := money.New(spend.Currency(), maxAmt, scale)
	if err != nil {
		return Seed{}, false, err
	}

	// The clamp measure matches edge.From's own currency, which is the
	// currency any amountRange arriving at this edge must already be
	// denominated in (edge.From == Buy's base, == Sell's quote; see
	// graph.Edge and DESIGN.md's resolution of the §4.4 input-capacity
	// wording in favor of this traversal-consistent mapping).
	var capMin, capMax, grossMin, grossMax money.Money
	if edge.Side == orderbook.Buy {
		capMin, capMax = edge.BaseCapacity.Min, edge.BaseCapacity.Max
		grossMin, grossMax = edge.GrossBaseCapacity.Min, edge.GrossBaseCapacity.Max
	} else {
		capMin, capMax = edge.QuoteCapacity.Min, edge.QuoteCapacity.Max
		grossMin, grossMax = edge.QuoteCapacity.Min, edge.QuoteCapacity.Max
	}

	clampedMin := minSpend
	if money.Compare(capMin, clampedMin) > 0 {
		clampedMin = capMin
	}
	clampedMax := maxSpend
	if money.Compare(capMax, clampedMax) < 0 {
		clampedMax = capMax
	}
	if money.Compare(clampedMin, clampedMax) > 0 {
		return Seed{}, false, nil
	}

	net := clampedMax
	gross, err := interpolate(capMin, capMax, net, grossMin, grossMax, scale)
	if err != nil {
		return Seed{}, false, err
	}

	return Seed{Net: net, Gross: gross, GrossCeiling: grossMax}, true, nil
}

// interpolate returns the value in [outMin, outMax] proportional to
// value's position in [min, max]. When max==min, outMin is returned.
func interpolate(min, max, value, outMin, outMax money.Money, scale int) (money.Money, error) {
	span, err := money.Sub(max, min)
	if err != nil || span.IsZero() {
		return outMin, nil
	}
	offset, err := money.Sub(value, min)
	if err != nil {
		return money.Money{}, err
	}
	ratio, err := decimal.Div(offset.Amount(), span.Amount(), scale)
	if err != nil {
		return money.Money{}, err
	}
	outSpan, err := money.Sub(outMax, outMin)
	if err != nil {
		return money.Money{}, err
	}
	delta, err := decimal.Mul(outSpan.Amount(), ratio, scale)
	if err != nil {
		return money.Money{}, err
	}
	deltaMoney, err := money.New(outMin.Currency(), delta, scale)
	if err != nil {
		return money.Money{}, err
	}

	return money.Add(outMin, deltaMoney)
}
