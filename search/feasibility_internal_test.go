package search

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
	"github.com/stretchr/testify/require"
)

func internalUSDEUREdge(t *testing.T, minBase, maxBase, rateVal string) *graph.Edge {
	t.Helper()
	pair, err := orderbook.NewAssetPair("USD", "EUR")
	require.NoError(t, err)
	bounds := money.MustNewOrderBounds(
		money.MustNew("USD", decimal.MustNewFromString(minBase, 4), 4),
		money.MustNew("USD", decimal.MustNewFromString(maxBase, 4), 4),
	)
	rate := money.MustNewExchangeRate("USD", "EUR", decimal.MustNewFromString(rateVal, 4), 4)
	order, err := orderbook.NewOrder(orderbook.Buy, pair, bounds, rate)
	require.NoError(t, err)

	g, err := graph.NewBuilder().Build([]orderbook.Order{order})
	require.NoError(t, err)

	return g.Node("USD").Edges[0]
}

func TestEdgeSupportsAmount_IntersectsWithCapacity(t *testing.T) {
	t.Parallel()

	edge := internalUSDEUREdge(t, "10", "100", "1.5")
	rng := &AmountRange{
		Min: money.MustNew("USD", decimal.MustNewFromString("5", 4), 4),
		Max: money.MustNew("USD", decimal.MustNewFromString("50", 4), 4),
	}

	out, ok := edgeSupportsAmount(edge, rng, graph.NewPruner())
	require.True(t, ok)
	require.Equal(t, "10.0000", out.Min.Amount().String(), "below-floor portion is clamped up to the mandatory minimum")
	require.Equal(t, "50.0000", out.Max.Amount().String())
}

func TestEdgeSupportsAmount_NoOverlapReportsFalse(t *testing.T) {
	t.Parallel()

	edge := internalUSDEUREdge(t, "10", "100", "1.5")
	rng := &AmountRange{
		Min: money.MustNew("USD", decimal.MustNewFromString("200", 4), 4),
		Max: money.MustNew("USD", decimal.MustNewFromString("300", 4), 4),
	}

	_, ok := edgeSupportsAmount(edge, rng, graph.NewPruner())
	require.False(t, ok)
}

func TestEdgeSupportsAmount_NilRangeReportsFalse(t *testing.T) {
	t.Parallel()

	edge := internalUSDEUREdge(t, "10", "100", "1.5")
	_, ok := edgeSupportsAmount(edge, nil, graph.NewPruner())
	require.False(t, ok)
}

func TestCalculateNextRange_BuyMultipliesByRate(t *testing.T) {
	t.Parallel()

	edge := internalUSDEUREdge(t, "10", "100", "1.5")
	feasible := &AmountRange{
		Min: money.MustNew("USD", decimal.MustNewFromString("10", 4), 4),
		Max: money.MustNew("USD", decimal.MustNewFromString("20", 4), 4),
	}

	out, err := calculateNextRange(edge, feasible)
	require.NoError(t, err)
	require.Equal(t, "EUR", out.Min.Currency())
	require.Equal(t, "15.0000", out.Min.Amount().String())
	require.Equal(t, "30.0000", out.Max.Amount().String())
}
