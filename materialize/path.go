// Package materialize turns an abstract search.CandidatePath into a
// concrete Path of fee-exact per-leg fills (LegMaterializer), and
// computes how far a materialized path's actual spend drifted from the
// caller's desired amount (ToleranceEvaluator).
package materialize

import (
	"encoding/json"
	"sort"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// PathHop is one concrete, fee-exact fill within a materialized Path.
type PathHop struct {
	From     string
	To       string
	Spent    money.Money
	Received money.Money
	Fees     map[string]money.Money
	Order    orderbook.Order
}

// Path is an ordered chain of PathHop plus the aggregate totals and
// residual tolerance against the caller's desired spend.
type Path struct {
	Hops              []PathHop
	TotalSpent        money.Money
	TotalReceived     money.Money
	ResidualTolerance decimal.Decimal
	FeeBreakdown      map[string]money.Money
}

// sortedFeeCurrencies returns the currencies present in fees, sorted
// lexicographically, matching the serialization contract in §6.2.
func sortedFeeCurrencies(fees map[string]money.Money) []string {
	out := make([]string, 0, len(fees))
	for k := range fees {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// pathHopWire is PathHop's wire shape per SPEC_FULL.md §6.2: the
// underlying Order is not part of the documented shape and is omitted.
type pathHopWire struct {
	From     string                 `json:"from"`
	To       string                 `json:"to"`
	Spent    money.Money            `json:"spent"`
	Received money.Money            `json:"received"`
	Fees     map[string]money.Money `json:"fees"`
}

// MarshalJSON renders h per SPEC_FULL.md §6.2's PathHop shape. encoding/
// json sorts string-keyed map entries lexicographically, so Fees needs no
// extra sorting pass here (sortedFeeCurrencies exists for aggregation,
// not serialization).
func (h PathHop) MarshalJSON() ([]byte, error) {
	fees := h.Fees
	if fees == nil {
		fees = map[string]money.Money{}
	}

	return json.Marshal(pathHopWire{From: h.From, To: h.To, Spent: h.Spent, Received: h.Received, Fees: fees})
}

// pathWire is Path's wire shape per SPEC_FULL.md §6.2.
type pathWire struct {
	TotalSpent        money.Money            `json:"totalSpent"`
	TotalReceived     money.Money            `json:"totalReceived"`
	ResidualTolerance string                 `json:"residualTolerance"`
	FeeBreakdown      map[string]money.Money `json:"feeBreakdown"`
	Legs              []PathHop              `json:"legs"`
}

// MarshalJSON renders p per SPEC_FULL.md §6.2's Path shape, with
// residualTolerance rendered at decimal.Scale per the tolerance
// evaluator's own computation scale.
func (p Path) MarshalJSON() ([]byte, error) {
	feeBreakdown := p.FeeBreakdown
	if feeBreakdown == nil {
		feeBreakdown = map[string]money.Money{}
	}
	legs := p.Hops
	if legs == nil {
		legs = []PathHop{}
	}

	return json.Marshal(pathWire{
		TotalSpent:        p.TotalSpent,
		TotalReceived:     p.TotalReceived,
		ResidualTolerance: p.ResidualTolerance.String(),
		FeeBreakdown:      feeBreakdown,
		Legs:              legs,
	})
}
