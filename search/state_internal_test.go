package search

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/stretchr/testify/require"
)

func TestSearchState_RouteSignatureIncludesSourceNode(t *testing.T) {
	t.Parallel()

	root := &searchState{node: "USD"}
	sig, err := root.routeSignature()
	require.NoError(t, err)
	require.Equal(t, "USD", sig.String())

	child := &searchState{
		node:  "GBP",
		edges: []PathEdge{{From: "USD", To: "EUR"}, {From: "EUR", To: "GBP"}},
	}
	sig, err = child.routeSignature()
	require.NoError(t, err)
	require.Equal(t, "USD->EUR->GBP", sig.String())
}

func TestSearchState_SignatureDistinguishesRangesAndDesiredAmount(t *testing.T) {
	t.Parallel()

	bare := &searchState{}
	require.Equal(t, "range:null|desired:null", bare.signature())

	withRange := &searchState{
		amountRange: &AmountRange{Min: mustMoney(t, "USD", "1.50"), Max: mustMoney(t, "USD", "3.00")},
	}
	require.Contains(t, withRange.signature(), "range:USD:1.50:3.00")

	other := &searchState{
		amountRange: &AmountRange{Min: mustMoney(t, "USD", "1.60"), Max: mustMoney(t, "USD", "3.00")},
	}
	require.NotEqual(t, withRange.signature(), other.signature(), "differing bounds must not collide")
}

func mustMoney(t *testing.T, currency, amount string) money.Money {
	t.Helper()

	return money.MustNew(currency, decimal.MustNewFromString(amount, 2), 2)
}

func TestSearchState_HasVisitedAndWithVisited(t *testing.T) {
	t.Parallel()

	s := &searchState{visited: map[string]struct{}{"USD": {}}}
	require.True(t, s.hasVisited("USD"))
	require.False(t, s.hasVisited("EUR"))

	extended := s.withVisited("EUR")
	require.Len(t, extended, 2)
	require.Len(t, s.visited, 1, "withVisited must not mutate the receiver")
}

func TestSearchStateRecord_Dominates(t *testing.T) {
	t.Parallel()

	cheaper := searchStateRecord{cost: decimal.MustNewFromString("1.0", decimal.Scale), hops: 2, signature: "x"}
	costlier := searchStateRecord{cost: decimal.MustNewFromString("2.0", decimal.Scale), hops: 2, signature: "x"}

	require.True(t, cheaper.dominates(costlier))
	require.False(t, costlier.dominates(cheaper))
}
