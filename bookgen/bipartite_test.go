package bookgen_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/bookgen"
	"github.com/stretchr/testify/require"
)

func TestBipartite_TradesEverySideButNeverWithinASide(t *testing.T) {
	t.Parallel()

	left := []string{"USD", "EUR"}
	right := []string{"JPY"}

	book, err := bookgen.BuildBipartiteBook(left, right)
	require.NoError(t, err)

	orders := book.Orders()
	require.Len(t, orders, 4, "2 left * 1 right * 2 directions = 4 orders")

	for _, o := range orders {
		require.False(t, o.From() == "USD" && o.To() == "EUR", "no order may trade within the left partition")
		require.False(t, o.From() == "EUR" && o.To() == "USD", "no order may trade within the left partition")
	}
}

func TestBipartite_RejectsEmptyPartition(t *testing.T) {
	t.Parallel()

	_, err := bookgen.BuildBipartiteBook([]string{"USD"}, nil)
	require.ErrorIs(t, err, bookgen.ErrTooFewCurrencies)
}

func TestBipartite_RejectsCurrencyOnBothSides(t *testing.T) {
	t.Parallel()

	_, err := bookgen.BuildBipartiteBook([]string{"USD", "EUR"}, []string{"EUR", "GBP"})
	require.ErrorIs(t, err, bookgen.ErrDuplicateCurrency)
}
