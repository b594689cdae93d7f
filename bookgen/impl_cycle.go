package bookgen

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// minCycleCurrencies is the smallest ring size: fewer than 3 currencies
// cannot form a loop without revisiting a currency within one hop.
const minCycleCurrencies = 3

// Cycle builds an n-currency arbitrage ring C_n (n >= 3): order i trades
// currencies[i] -> currencies[(i+1)%n], closing the ring back to
// currencies[0] on the last order.
func Cycle(currencies []string, cfg *genConfig) ([]orderbook.Order, error) {
	names, err := normalizeCurrencies(currencies)
	if err != nil {
		return nil, err
	}
	n := len(names)
	if n < minCycleCurrencies {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleCurrencies, ErrTooFewCurrencies)
	}

	orders := make([]orderbook.Order, 0, n)
	for i := 0; i < n; i++ {
		base := names[i]
		quote := names[(i+1)%n]
		o, err := buildOrder(base, quote, i, cfg)
		if err != nil {
			return nil, fmt.Errorf("Cycle: order %d (%s->%s): %w", i, base, quote, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}
