package bookgen

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// minStarCurrencies is the smallest hub-and-spoke size: a hub plus one
// leaf (2 currencies total).
const minStarCurrencies = 2

// Star builds a hub-and-spoke market: currencies[0] is the hub and
// trades directly against each of currencies[1:] (n >= 2). Order i trades
// the hub -> currencies[i+1], mirroring the center-to-leaf direction of
// the graph topology this package is adapted from.
func Star(currencies []string, cfg *genConfig) ([]orderbook.Order, error) {
	names, err := normalizeCurrencies(currencies)
	if err != nil {
		return nil, err
	}
	n := len(names)
	if n < minStarCurrencies {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarCurrencies, ErrTooFewCurrencies)
	}

	hub := names[0]
	orders := make([]orderbook.Order, 0, n-1)
	for i, leaf := range names[1:] {
		o, err := buildOrder(hub, leaf, i, cfg)
		if err != nil {
			return nil, fmt.Errorf("Star: order %d (%s->%s): %w", i, hub, leaf, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}
