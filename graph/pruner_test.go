package graph_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/stretchr/testify/require"
)

func usd(t *testing.T, amt string) money.Money {
	t.Helper()
	return money.MustNew("USD", decimal.MustNewFromString(amt, 2), 2)
}

func TestPruner_KeepsMandatoryFirstAndRetainsOptionalHeadroom(t *testing.T) {
	t.Parallel()

	segments := []graph.Segment{
		{IsMandatory: true, Base: graph.Range{Min: usd(t, "10"), Max: usd(t, "10")}},
		{IsMandatory: false, Base: graph.Range{Min: usd(t, "0"), Max: usd(t, "90")}},
	}

	kept := graph.NewPruner().Prune(segments, graph.MeasureBase)
	require.Len(t, kept, 2)
	require.True(t, kept[0].IsMandatory, "mandatory segments sort first")
}

func TestPruner_DropsZeroCapacityOptionalSegments(t *testing.T) {
	t.Parallel()

	segments := []graph.Segment{
		{IsMandatory: true, Base: graph.Range{Min: usd(t, "50"), Max: usd(t, "50")}},
		{IsMandatory: false, Base: graph.Range{Min: usd(t, "0"), Max: usd(t, "0")}},
	}

	kept := graph.NewPruner().Prune(segments, graph.MeasureBase)
	require.Len(t, kept, 1, "a zero-capacity optional segment carries no headroom")
	require.True(t, kept[0].IsMandatory)
}

func TestPruner_OrdersByDescendingCapacity(t *testing.T) {
	t.Parallel()

	segments := []graph.Segment{
		{IsMandatory: false, Base: graph.Range{Min: usd(t, "0"), Max: usd(t, "10")}},
		{IsMandatory: false, Base: graph.Range{Min: usd(t, "0"), Max: usd(t, "50")}},
	}

	kept := graph.NewPruner().Prune(segments, graph.MeasureBase)
	require.Len(t, kept, 2)
	require.Equal(t, "50.00", kept[0].Base.Max.Amount().String())
	require.Equal(t, "10.00", kept[1].Base.Max.Amount().String())
}

func TestMeasure_RangeOfSelectsDimension(t *testing.T) {
	t.Parallel()

	seg := graph.Segment{
		Base:      graph.Range{Min: usd(t, "1"), Max: usd(t, "2")},
		Quote:     graph.Range{Min: usd(t, "3"), Max: usd(t, "4")},
		GrossBase: graph.Range{Min: usd(t, "5"), Max: usd(t, "6")},
	}

	require.Equal(t, "2.00", graph.MeasureBase.RangeOf(seg).Max.Amount().String())
	require.Equal(t, "4.00", graph.MeasureQuote.RangeOf(seg).Max.Amount().String())
	require.Equal(t, "6.00", graph.MeasureGrossBase.RangeOf(seg).Max.Amount().String())
}
