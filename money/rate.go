package money

import (
	"errors"
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/decimal"
)

// ErrSameCurrency indicates an ExchangeRate was constructed with
// base == quote.
var ErrSameCurrency = errors.New("money: base and quote currency must differ")

// ErrNonPositiveRate indicates a rate value <= 0 was supplied; rates must
// be strictly positive to be invertible and to preserve direction.
var ErrNonPositiveRate = errors.New("money: rate value must be > 0")

// ExchangeRate converts an amount of base into an amount of quote:
// quote = base * value.
type ExchangeRate struct {
	base  string
	quote string
	value decimal.Decimal
	scale int
}

// NewExchangeRate constructs an ExchangeRate, validating base != quote and
// value > 0.
func NewExchangeRate(base, quote string, value decimal.Decimal, scale int) (ExchangeRate, error) {
	b, err := normalizeCurrency(base)
	if err != nil {
		return ExchangeRate{}, err
	}
	q, err := normalizeCurrency(quote)
	if err != nil {
		return ExchangeRate{}, err
	}
	if b == q {
		return ExchangeRate{}, fmt.Errorf("%w: %s", ErrSameCurrency, b)
	}
	if scale < 0 || scale > MaxScale {
		return ExchangeRate{}, fmt.Errorf("%w: got %d", ErrScaleOutOfRange, scale)
	}
	norm, err := decimal.Normalize(value, scale)
	if err != nil {
		return ExchangeRate{}, err
	}
	if !norm.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("%w: got %s", ErrNonPositiveRate, norm)
	}

	return ExchangeRate{base: b, quote: q, value: norm, scale: scale}, nil
}

// MustNewExchangeRate is NewExchangeRate, panicking on error.
func MustNewExchangeRate(base, quote string, value decimal.Decimal, scale int) ExchangeRate {
	r, err := NewExchangeRate(base, quote, value, scale)
	if err != nil {
		panic(err)
	}

	return r
}

// Base returns the rate's base currency.
func (r ExchangeRate) Base() string { return r.base }

// Quote returns the rate's quote currency.
func (r ExchangeRate) Quote() string { return r.quote }

// Value returns the underlying rate value.
func (r ExchangeRate) Value() decimal.Decimal { return r.value }

// Scale returns the rate's declared scale.
func (r ExchangeRate) Scale() int { return r.scale }

// Convert returns m.Amount*r.value as Money in the quote currency.
// m must be denominated in r.base. The result scale is
// max(m.scale, r.scale, override) when override is supplied, else
// max(m.scale, r.scale).
func (r ExchangeRate) Convert(m Money, override ...int) (Money, error) {
	if m.Currency() != r.base {
		return Money{}, fmt.Errorf("%w: rate base %s, money %s", ErrCurrencyMismatch, r.base, m.Currency())
	}
	scale := m.scale
	if r.scale > scale {
		scale = r.scale
	}
	if len(override) > 0 && override[0] > scale {
		scale = override[0]
	}
	product, err := decimal.Mul(m.amount, r.value, scale)
	if err != nil {
		return Money{}, err
	}

	return New(r.quote, product, scale)
}

// Invert returns the reciprocal rate (quote->base) at the same scale.
func (r ExchangeRate) Invert() (ExchangeRate, error) {
	one := decimal.One(r.scale)
	inv, err := decimal.Div(one, r.value, r.scale)
	if err != nil {
		return ExchangeRate{}, err
	}

	return NewExchangeRate(r.quote, r.base, inv, r.scale)
}
