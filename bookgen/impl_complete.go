package bookgen

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// minCompleteCurrencies is the smallest fully connected market: two
// currencies trading both directions.
const minCompleteCurrencies = 2

// Complete builds a fully connected market K_n over n currencies
// (n >= 2): every ordered pair (i, j) with i != j gets its own order
// currencies[i] -> currencies[j], emitted in row-major (i, then j) order.
func Complete(currencies []string, cfg *genConfig) ([]orderbook.Order, error) {
	names, err := normalizeCurrencies(currencies)
	if err != nil {
		return nil, err
	}
	n := len(names)
	if n < minCompleteCurrencies {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteCurrencies, ErrTooFewCurrencies)
	}

	orders := make([]orderbook.Order, 0, n*(n-1))
	i := 0
	for _, base := range names {
		for _, quote := range names {
			if base == quote {
				continue
			}
			o, err := buildOrder(base, quote, i, cfg)
			if err != nil {
				return nil, fmt.Errorf("Complete: order %d (%s->%s): %w", i, base, quote, err)
			}
			orders = append(orders, o)
			i++
		}
	}

	return orders, nil
}
