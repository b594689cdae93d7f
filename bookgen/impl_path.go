package bookgen

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// minPathCurrencies is the smallest chain size: a single currency has no
// conversion to chain.
const minPathCurrencies = 2

// Path builds a conversion chain P_n over n currencies (n >= 2): order i
// trades currencies[i] -> currencies[i+1], with no order closing the
// chain back to currencies[0].
func Path(currencies []string, cfg *genConfig) ([]orderbook.Order, error) {
	names, err := normalizeCurrencies(currencies)
	if err != nil {
		return nil, err
	}
	n := len(names)
	if n < minPathCurrencies {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathCurrencies, ErrTooFewCurrencies)
	}

	orders := make([]orderbook.Order, 0, n-1)
	for i := 0; i < n-1; i++ {
		base := names[i]
		quote := names[i+1]
		o, err := buildOrder(base, quote, i, cfg)
		if err != nil {
			return nil, fmt.Errorf("Path: order %d (%s->%s): %w", i, base, quote, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}
