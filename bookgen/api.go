// api.go - thin public entry-point for the bookgen package.
//
// Design contract, carried over from the topology builder this package is
// adapted from:
//   - One orchestrator: BuildBook(currencies, con, opts...).
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (Option) resolve into an immutable genConfig.
//   - Determinism: same currencies/options/constructor ⇒ the same orders in
//     the same sequence; only the freshly generated order IDs differ.
//   - Safety: constructors never panic; they return sentinel errors.
package bookgen

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// Constructor builds one topology's worth of orders over currencies using
// the resolved genConfig. Implementations MUST validate parameters early,
// emit orders in a stable, documented order, and return only sentinel
// errors — never panic.
type Constructor func(currencies []string, cfg *genConfig) ([]orderbook.Order, error)

// BuildBook runs con against currencies and opts, adding every resulting
// order to a fresh orderbook.Book in emission order.
func BuildBook(currencies []string, con Constructor, opts ...Option) (*orderbook.Book, error) {
	cfg := newGenConfig(opts...)
	orders, err := con(currencies, cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildBook: %w", err)
	}

	book := orderbook.NewBook()
	for _, o := range orders {
		book.Add(o)
	}

	return book, nil
}

// Topology factories (declarations) - implemented in impl_*.go.
//
// Cycle builds an arbitrage ring over n currencies (n >= 3): order i
// trades currencies[i] -> currencies[(i+1)%n].
//func Cycle(currencies []string, cfg *genConfig) ([]orderbook.Order, error)

// Path builds a conversion chain over n currencies (n >= 2): order i
// trades currencies[i] -> currencies[i+1].
//func Path(currencies []string, cfg *genConfig) ([]orderbook.Order, error)

// Star builds a hub-and-spoke market: currencies[0] is the hub and trades
// directly against every other currency (n >= 2).
//func Star(currencies []string, cfg *genConfig) ([]orderbook.Order, error)

// Complete builds a fully connected market: every ordered pair of
// distinct currencies trades directly (n >= 2).
//func Complete(currencies []string, cfg *genConfig) ([]orderbook.Order, error)

// Bipartite builds a two-sided market: every left currency trades
// directly against every right currency, with no trades within a side.
//func Bipartite(left, right []string, cfg *genConfig) ([]orderbook.Order, error)
