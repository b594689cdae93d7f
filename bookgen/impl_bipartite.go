package bookgen

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// Bipartite builds a two-sided market: every currency in left trades
// directly against every currency in right (both directions), and no
// currency trades another on its own side. Orders are emitted row-major,
// one pair at a time: for each left[i] and each right[j] in turn,
// left[i] -> right[j] immediately followed by right[j] -> left[i].
//
// Bipartite does not satisfy the Constructor signature (it takes two
// currency lists, not one); use BuildBipartiteBook instead of BuildBook
// to run it.
func Bipartite(left, right []string, cfg *genConfig) ([]orderbook.Order, error) {
	leftNames, err := normalizeCurrencies(left)
	if err != nil {
		return nil, err
	}
	rightNames, err := normalizeCurrencies(right)
	if err != nil {
		return nil, err
	}
	if len(leftNames) == 0 || len(rightNames) == 0 {
		return nil, fmt.Errorf("Bipartite: both partitions must be non-empty: %w", ErrTooFewCurrencies)
	}
	for _, l := range leftNames {
		for _, r := range rightNames {
			if l == r {
				return nil, fmt.Errorf("%w: %s appears on both sides", ErrDuplicateCurrency, l)
			}
		}
	}

	orders := make([]orderbook.Order, 0, 2*len(leftNames)*len(rightNames))
	i := 0
	for _, l := range leftNames {
		for _, r := range rightNames {
			o, err := buildOrder(l, r, i, cfg)
			if err != nil {
				return nil, fmt.Errorf("Bipartite: order %d (%s->%s): %w", i, l, r, err)
			}
			orders = append(orders, o)
			i++

			o, err = buildOrder(r, l, i, cfg)
			if err != nil {
				return nil, fmt.Errorf("Bipartite: order %d (%s->%s): %w", i, r, l, err)
			}
			orders = append(orders, o)
			i++
		}
	}

	return orders, nil
}

// BuildBipartiteBook runs Bipartite against left/right and opts, adding
// every resulting order to a fresh orderbook.Book in emission order.
func BuildBipartiteBook(left, right []string, opts ...Option) (*orderbook.Book, error) {
	cfg := newGenConfig(opts...)
	orders, err := Bipartite(left, right, cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildBipartiteBook: %w", err)
	}

	book := orderbook.NewBook()
	for _, o := range orders {
		book.Add(o)
	}

	return book, nil
}
