package bookgen_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/bookgen"
	"github.com/stretchr/testify/require"
)

func TestPath_ChainsWithoutClosingTheLoop(t *testing.T) {
	t.Parallel()

	book, err := bookgen.BuildBook([]string{"USD", "EUR", "GBP"}, bookgen.Path)
	require.NoError(t, err)

	orders := book.Orders()
	require.Len(t, orders, 2)
	require.Equal(t, "USD", orders[0].From())
	require.Equal(t, "EUR", orders[0].To())
	require.Equal(t, "EUR", orders[1].From())
	require.Equal(t, "GBP", orders[1].To())
}

func TestPath_RejectsFewerThanTwoCurrencies(t *testing.T) {
	t.Parallel()

	_, err := bookgen.BuildBook([]string{"USD"}, bookgen.Path)
	require.ErrorIs(t, err, bookgen.ErrTooFewCurrencies)
}

func TestPath_AppliesCustomRateAndBounds(t *testing.T) {
	t.Parallel()

	rate := func(base, quote string, i int) float64 { return 2.0 }
	bounds := func(base, quote string, i int) (float64, float64) { return 5, 50 }

	book, err := bookgen.BuildBook([]string{"USD", "EUR"}, bookgen.Path,
		bookgen.WithRateFn(rate), bookgen.WithBoundsFn(bounds))
	require.NoError(t, err)

	order := book.Orders()[0]
	require.Equal(t, "2.00000000", order.EffectiveRate().Value().String())
	require.Equal(t, "5.00000000", order.Bounds().Min().Amount().String())
	require.Equal(t, "50.00000000", order.Bounds().Max().Amount().String())
}
