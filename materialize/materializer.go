package materialize

import (
	"errors"
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
	"github.com/somework/p2p-path-finder-sub001/search"
)

// Scale adjustments layered on top of decimal.Scale while refining a
// leg's fill ratio, per the materializer's convergence contract.
const (
	buyAdjustmentRatioExtraScale  = 4
	sellResolutionRatioExtraScale = 6
	maxRefineIterations           = 8
)

// relativeTolerance bounds how close a SELL leg's actual quote output
// must land to its target before it is accepted.
const relativeTolerance = "0.0000000001"

// ErrRatioCollapsed indicates a leg's fill ratio converged to zero or
// negative before satisfying the order's bounds; the candidate is
// rejected (absence), not an error surfaced to the caller.
var ErrRatioCollapsed = errors.New("materialize: fill ratio collapsed")

// ErrZeroActualNonzeroTarget indicates a SELL leg produced zero output
// while a nonzero amount was targeted.
var ErrZeroActualNonzeroTarget = errors.New("materialize: actual output is zero but target is nonzero")

// LegMaterializer converts a search.CandidatePath into a concrete Path.
type LegMaterializer struct{}

// NewLegMaterializer returns a ready-to-use LegMaterializer. It carries
// no state.
func NewLegMaterializer() LegMaterializer { return LegMaterializer{} }

// Materialize walks candidate's edges in order, producing one PathHop
// per edge. budget is the initial spend available in the first edge's
// input currency; each subsequent edge's ceiling is the previous hop's
// Received amount, already denominated in that edge's input currency.
// ok=false means the candidate could not be materialized within its
// orders' bounds (absence, not an error).
func (LegMaterializer) Materialize(candidate search.CandidatePath, budget money.Money) (Path, bool, error) {
	if len(candidate.Edges) == 0 {
		return Path{}, false, nil
	}

	hops := make([]PathHop, 0, len(candidate.Edges))
	available := budget

	for _, edge := range candidate.Edges {
		hop, ok, err := materializeLeg(edge, available)
		if errors.Is(err, ErrRatioCollapsed) {
			return Path{}, false, nil
		}
		if err != nil {
			return Path{}, false, err
		}
		if !ok {
			return Path{}, false, nil
		}
		hops = append(hops, hop)
		available = hop.Received
	}

	totalSpent := hops[0].Spent
	totalReceived := hops[len(hops)-1].Received
	feeBreakdown, err := aggregateFees(hops)
	if err != nil {
		return Path{}, false, err
	}

	return Path{
		Hops:          hops,
		TotalSpent:    totalSpent,
		TotalReceived: totalReceived,
		FeeBreakdown:  feeBreakdown,
	}, true, nil
}

func materializeLeg(edge search.PathEdge, available money.Money) (PathHop, bool, error) {
	switch edge.OrderSide {
	case orderbook.Buy:
		return materializeBuyLeg(edge, available)
	default:
		return materializeSellLeg(edge, available)
	}
}

// materializeBuyLeg chooses the base amount to buy such that the
// taker's base-currency cost (the traded amount plus any base-side fee)
// never exceeds the available ceiling — both expressed in edge.From's
// currency — refining the base amount by ratio = ceiling/grossSpend
// until it lands within the order's bounds or the ratio collapses.
func materializeBuyLeg(edge search.PathEdge, ceiling money.Money) (PathHop, bool, error) {
	order := edge.Order
	scale := buyAdjustmentRatioExtraScale + decimal.Scale
	base := order.Bounds().Max()

	for i := 0; i < maxRefineIterations; i++ {
		grossQuote, err := order.CalculateQuoteAmount(base)
		if err != nil {
			return PathHop{}, false, err
		}
		fees, err := feePolicyOf(order).Calculate(orderbook.Buy, base, grossQuote)
		if err != nil {
			return PathHop{}, false, err
		}
		grossSpend, err := money.Add(base, safeFee(fees.Base, base))
		if err != nil {
			return PathHop{}, false, err
		}
		if money.Compare(grossSpend, ceiling) <= 0 {
			if !order.Bounds().Contains(base) {
				return PathHop{}, false, nil
			}
			netQuote, err := money.Sub(grossQuote, safeFee(fees.Quote, grossQuote))
			if err != nil {
				return PathHop{}, false, err
			}

			return buildHop(edge, grossSpend, netQuote, fees), true, nil
		}
		ratio, err := decimal.Div(ceiling.Amount(), grossSpend.Amount(), scale)
		if err != nil {
			return PathHop{}, false, err
		}
		if !ratio.IsPositive() {
			return PathHop{}, false, fmt.Errorf("%w: order %s", ErrRatioCollapsed, order.ID())
		}
		newBaseAmt, err := decimal.Mul(base.Amount(), ratio, base.Scale())
		if err != nil {
			return PathHop{}, false, err
		}
		base, err = money.New(base.Currency(), newBaseAmt, base.Scale())
		if err != nil {
			return PathHop{}, false, err
		}
	}

	return PathHop{}, false, nil
}

// materializeSellLeg chooses the base amount to sell such that the
// taker's quote-currency cost lands on the target, refining by ratio =
// target/actual; the amount actually received is net of any base-side
// fee the order charges.
func materializeSellLeg(edge search.PathEdge, target money.Money) (PathHop, bool, error) {
	order := edge.Order
	scale := sellResolutionRatioExtraScale + decimal.Scale
	base := order.Bounds().Max()
	tolerance := decimal.MustNewFromString(relativeTolerance, decimal.Scale)

	for i := 0; i < maxRefineIterations; i++ {
		rawQuote, err := order.CalculateQuoteAmount(base)
		if err != nil {
			return PathHop{}, false, err
		}
		fees, err := feePolicyOf(order).Calculate(orderbook.Sell, base, rawQuote)
		if err != nil {
			return PathHop{}, false, err
		}
		quoteFee := zeroLike(rawQuote)
		if fees.Quote != nil {
			quoteFee = *fees.Quote
		}
		grossQuote, err := money.Add(rawQuote, quoteFee)
		if err != nil {
			return PathHop{}, false, err
		}

		if grossQuote.IsZero() && target.Amount().IsPositive() {
			return PathHop{}, false, fmt.Errorf("%w: order %s", ErrZeroActualNonzeroTarget, order.ID())
		}

		diff, err := decimal.Sub(grossQuote.Amount(), target.Amount(), decimal.Scale)
		if err == nil {
			abs := diff
			if abs.IsNegative() {
				abs, _ = decimal.Sub(decimal.Zero(decimal.Scale), diff, decimal.Scale)
			}
			if decimal.Compare(abs, tolerance) <= 0 {
				if !order.Bounds().Contains(base) {
					return PathHop{}, false, nil
				}
				netBase, err := money.Sub(base, safeFee(fees.Base, base))
				if err != nil {
					return PathHop{}, false, err
				}

				return buildHop(edge, grossQuote, netBase, fees), true, nil
			}
		}

		ratio, err := decimal.Div(target.Amount(), grossQuote.Amount(), scale)
		if err != nil {
			return PathHop{}, false, err
		}
		if !ratio.IsPositive() {
			return PathHop{}, false, fmt.Errorf("%w: order %s", ErrRatioCollapsed, order.ID())
		}
		newBaseAmt, err := decimal.Mul(base.Amount(), ratio, base.Scale())
		if err != nil {
			return PathHop{}, false, err
		}
		base, err = money.New(base.Currency(), newBaseAmt, base.Scale())
		if err != nil {
			return PathHop{}, false, err
		}
	}

	return PathHop{}, false, nil
}

func buildHop(edge search.PathEdge, spent, received money.Money, fees orderbook.FeeBreakdown) PathHop {
	feeMap := make(map[string]money.Money, 2)
	if fees.Base != nil && !fees.Base.IsZero() {
		feeMap[fees.Base.Currency()] = *fees.Base
	}
	if fees.Quote != nil && !fees.Quote.IsZero() {
		feeMap[fees.Quote.Currency()] = *fees.Quote
	}

	return PathHop{
		From:     edge.From,
		To:       edge.To,
		Spent:    spent,
		Received: received,
		Fees:     feeMap,
		Order:    edge.Order,
	}
}

func safeFee(fee *money.Money, like money.Money) money.Money {
	if fee != nil {
		return *fee
	}

	return zeroLike(like)
}

func zeroLike(m money.Money) money.Money {
	return money.MustNew(m.Currency(), decimal.Zero(m.Scale()), m.Scale())
}

func feePolicyOf(o orderbook.Order) orderbook.FeePolicy {
	if fp := o.FeePolicy(); fp != nil {
		return fp
	}

	return orderbook.NoFeePolicy{}
}

// aggregateFees sums every hop's non-zero fees by currency, at the max
// scale of the contributors, with currencies visited in sorted order for
// deterministic map construction.
func aggregateFees(hops []PathHop) (map[string]money.Money, error) {
	totals := make(map[string]money.Money)
	for _, hop := range hops {
		for _, cur := range sortedFeeCurrencies(hop.Fees) {
			fee := hop.Fees[cur]
			if existing, ok := totals[cur]; ok {
				sum, err := money.Add(existing, fee)
				if err != nil {
					return nil, err
				}
				totals[cur] = sum
			} else {
				totals[cur] = fee
			}
		}
	}

	return totals, nil
}

