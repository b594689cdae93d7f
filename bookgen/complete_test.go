package bookgen_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/bookgen"
	"github.com/stretchr/testify/require"
)

func TestComplete_ConnectsEveryOrderedPair(t *testing.T) {
	t.Parallel()

	book, err := bookgen.BuildBook([]string{"USD", "EUR", "GBP"}, bookgen.Complete)
	require.NoError(t, err)

	orders := book.Orders()
	require.Len(t, orders, 6, "3 currencies must yield n*(n-1)=6 directed orders")

	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		require.NotEqual(t, o.From(), o.To())
		seen[o.From()+"->"+o.To()] = true
	}
	require.True(t, seen["USD->EUR"])
	require.True(t, seen["EUR->USD"])
	require.True(t, seen["GBP->USD"])
}

func TestComplete_RejectsFewerThanTwoCurrencies(t *testing.T) {
	t.Parallel()

	_, err := bookgen.BuildBook([]string{"USD"}, bookgen.Complete)
	require.ErrorIs(t, err, bookgen.ErrTooFewCurrencies)
}
