package bookgen

import (
	"fmt"
	"strings"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// extraFloatDigits gives the string formatter enough fractional digits to
// round correctly at the target scale before HALF_UP truncates it.
const extraFloatDigits = 6

func normalizeCurrencies(currencies []string) ([]string, error) {
	seen := make(map[string]struct{}, len(currencies))
	out := make([]string, 0, len(currencies))
	for _, raw := range currencies {
		c := strings.ToUpper(strings.TrimSpace(raw))
		if c == "" {
			return nil, ErrEmptyCurrency
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCurrency, c)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}

func decimalFromFloat(f float64, scale int) (decimal.Decimal, error) {
	return decimal.NewFromString(fmt.Sprintf("%.*f", scale+extraFloatDigits, f), scale)
}

// buildOrder emits a single BUY order base->quote: cfg.rateFn/boundsFn are
// evaluated with i as the order's position in the constructor's emission
// order, and cfg.feePolicy is attached to every order a topology builds.
func buildOrder(base, quote string, i int, cfg *genConfig) (orderbook.Order, error) {
	pair, err := orderbook.NewAssetPair(base, quote)
	if err != nil {
		return orderbook.Order{}, err
	}

	minBase, maxBase := cfg.boundsFn(pair.Base, pair.Quote, i)
	minAmt, err := decimalFromFloat(minBase, cfg.scale)
	if err != nil {
		return orderbook.Order{}, err
	}
	maxAmt, err := decimalFromFloat(maxBase, cfg.scale)
	if err != nil {
		return orderbook.Order{}, err
	}
	minMoney, err := money.New(pair.Base, minAmt, cfg.scale)
	if err != nil {
		return orderbook.Order{}, err
	}
	maxMoney, err := money.New(pair.Base, maxAmt, cfg.scale)
	if err != nil {
		return orderbook.Order{}, err
	}
	bounds, err := money.NewOrderBounds(minMoney, maxMoney)
	if err != nil {
		return orderbook.Order{}, err
	}

	rateVal, err := decimalFromFloat(cfg.rateFn(pair.Base, pair.Quote, i), cfg.scale)
	if err != nil {
		return orderbook.Order{}, err
	}
	rate, err := money.NewExchangeRate(pair.Base, pair.Quote, rateVal, cfg.scale)
	if err != nil {
		return orderbook.Order{}, err
	}

	return orderbook.NewOrder(orderbook.Buy, pair, bounds, rate, orderbook.WithFeePolicy(cfg.feePolicy))
}
