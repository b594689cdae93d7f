package orderbook

import (
	"errors"
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/money"
)

// ErrFeeCurrencyViolation indicates a FeePolicy returned a fee denominated
// in a currency other than the order's base or quote; per the error
// handling design this is a fatal InvalidInput for the order, not an
// absence.
var ErrFeeCurrencyViolation = errors.New("orderbook: fee must be denominated in base or quote currency")

// FeeBreakdown is the set of fees a FeePolicy charges for a single fill:
// at most one fee on the base leg and one on the quote leg, where nil
// means no fee on that leg.
type FeeBreakdown struct {
	Base  *money.Money
	Quote *money.Money
}

// Validate checks that any populated fee is denominated in the expected
// currency.
func (fb FeeBreakdown) Validate(pair AssetPair) error {
	if fb.Base != nil && fb.Base.Currency() != pair.Base {
		return fmt.Errorf("%w: got %s, want %s", ErrFeeCurrencyViolation, fb.Base.Currency(), pair.Base)
	}
	if fb.Quote != nil && fb.Quote.Currency() != pair.Quote {
		return fmt.Errorf("%w: got %s, want %s", ErrFeeCurrencyViolation, fb.Quote.Currency(), pair.Quote)
	}

	return nil
}

// FeePolicy computes the fees owed on a fill of baseAmount/quoteAmount
// for the given side. Implementations must return fees denominated only
// in the order's base and/or quote currency.
type FeePolicy interface {
	Calculate(side Side, baseAmount, quoteAmount money.Money) (FeeBreakdown, error)
}

// NoFeePolicy is a FeePolicy that always charges nothing. It is the
// implicit policy for an Order constructed without WithFeePolicy.
type NoFeePolicy struct{}

// Calculate returns an empty FeeBreakdown.
func (NoFeePolicy) Calculate(_ Side, _, _ money.Money) (FeeBreakdown, error) {
	return FeeBreakdown{}, nil
}

// FlatRateFeePolicy charges a fixed fraction of the base amount (for
// SELL fills) or the quote amount (for BUY fills), mirroring a typical
// taker-fee schedule.
type FlatRateFeePolicy struct {
	// BaseRate is applied to SELL fills' base leg.
	BaseRate float64
	// QuoteRate is applied to BUY fills' quote leg.
	QuoteRate float64
}

// Calculate implements FeePolicy.
func (p FlatRateFeePolicy) Calculate(side Side, baseAmount, quoteAmount money.Money) (FeeBreakdown, error) {
	var fb FeeBreakdown
	switch side {
	case Sell:
		if p.BaseRate > 0 {
			fee, err := scaleMoney(baseAmount, p.BaseRate)
			if err != nil {
				return FeeBreakdown{}, err
			}
			fb.Base = &fee
		}
	case Buy:
		if p.QuoteRate > 0 {
			fee, err := scaleMoney(quoteAmount, p.QuoteRate)
			if err != nil {
				return FeeBreakdown{}, err
			}
			fb.Quote = &fee
		}
	default:
		return FeeBreakdown{}, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}

	return fb, nil
}

func scaleMoney(m money.Money, rate float64) (money.Money, error) {
	ratio, err := decimalFromFloat(rate, m.Scale())
	if err != nil {
		return money.Money{}, err
	}
	product, err := mulMoney(m, ratio)
	if err != nil {
		return money.Money{}, err
	}

	return product, nil
}

// OrderFilter selects orders before the graph is built; Accepts(o)==false
// excludes o from the search entirely.
type OrderFilter interface {
	Accepts(o Order) bool
}

// OrderFilterFunc adapts a plain function to OrderFilter.
type OrderFilterFunc func(o Order) bool

// Accepts implements OrderFilter.
func (f OrderFilterFunc) Accepts(o Order) bool { return f(o) }
