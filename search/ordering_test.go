package search_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/search"
	"github.com/stretchr/testify/require"
)

func mustCost(t *testing.T, s string) search.PathCost {
	t.Helper()
	c, err := search.NewPathCost(decimal.MustNewFromString(s, decimal.Scale))
	require.NoError(t, err)

	return c
}

func mustSig(t *testing.T, nodes ...string) search.RouteSignature {
	t.Helper()
	sig, err := search.NewRouteSignature(nodes)
	require.NoError(t, err)

	return sig
}

func TestRouteSignature_RejectsEmptyOrBlank(t *testing.T) {
	t.Parallel()

	_, err := search.NewRouteSignature(nil)
	require.ErrorIs(t, err, search.ErrEmptyRouteSignature)

	_, err = search.NewRouteSignature([]string{"USD", " "})
	require.ErrorIs(t, err, search.ErrEmptyRouteSignature)
}

func TestRouteSignature_String(t *testing.T) {
	t.Parallel()

	sig := mustSig(t, "USD", "EUR", "GBP")
	require.Equal(t, "USD->EUR->GBP", sig.String())
}

func TestDefaultOrder_CostDominatesFirst(t *testing.T) {
	t.Parallel()

	cheap := search.PathOrderKey{Cost: mustCost(t, "1.0"), Hops: 3, RouteSignature: mustSig(t, "A", "B")}
	costly := search.PathOrderKey{Cost: mustCost(t, "2.0"), Hops: 1, RouteSignature: mustSig(t, "A")}

	require.Negative(t, search.DefaultOrder.Compare(cheap, costly))
}

func TestDefaultOrder_TiesBreakOnHopsThenRouteThenInsertion(t *testing.T) {
	t.Parallel()

	cost := mustCost(t, "1.0")
	fewerHops := search.PathOrderKey{Cost: cost, Hops: 1, RouteSignature: mustSig(t, "A", "Z")}
	moreHops := search.PathOrderKey{Cost: cost, Hops: 2, RouteSignature: mustSig(t, "A", "B")}
	require.Negative(t, search.DefaultOrder.Compare(fewerHops, moreHops))

	sameHopsA := search.PathOrderKey{Cost: cost, Hops: 1, RouteSignature: mustSig(t, "A", "B")}
	sameHopsB := search.PathOrderKey{Cost: cost, Hops: 1, RouteSignature: mustSig(t, "A", "C")}
	require.Negative(t, search.DefaultOrder.Compare(sameHopsA, sameHopsB))

	sameRouteFirst := search.PathOrderKey{Cost: cost, Hops: 1, RouteSignature: mustSig(t, "A", "B"), InsertionOrder: 1}
	sameRouteSecond := search.PathOrderKey{Cost: cost, Hops: 1, RouteSignature: mustSig(t, "A", "B"), InsertionOrder: 2}
	require.Negative(t, search.DefaultOrder.Compare(sameRouteFirst, sameRouteSecond))
	require.Zero(t, search.DefaultOrder.Compare(sameRouteFirst, sameRouteFirst))
}
