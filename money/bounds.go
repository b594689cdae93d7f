package money

import (
	"errors"
	"fmt"
)

// ErrBoundsCurrencyMismatch indicates OrderBounds.min and .max were
// supplied in different currencies.
var ErrBoundsCurrencyMismatch = errors.New("money: bounds min/max currency mismatch")

// ErrBoundsInverted indicates min > max.
var ErrBoundsInverted = errors.New("money: bounds min must be <= max")

// OrderBounds is an inclusive [min, max] range of Money in one currency.
type OrderBounds struct {
	min Money
	max Money
}

// NewOrderBounds constructs OrderBounds, validating matching currencies
// and min <= max. Both operands are renormalized to the max of their
// declared scales.
func NewOrderBounds(min, max Money) (OrderBounds, error) {
	if min.Currency() != max.Currency() {
		return OrderBounds{}, fmt.Errorf("%w: %s vs %s", ErrBoundsCurrencyMismatch, min.Currency(), max.Currency())
	}
	scale := min.scale
	if max.scale > scale {
		scale = max.scale
	}
	nmin, err := New(min.currency, min.amount, scale)
	if err != nil {
		return OrderBounds{}, err
	}
	nmax, err := New(max.currency, max.amount, scale)
	if err != nil {
		return OrderBounds{}, err
	}
	if Compare(nmin, nmax) > 0 {
		return OrderBounds{}, fmt.Errorf("%w: min=%s max=%s", ErrBoundsInverted, nmin, nmax)
	}

	return OrderBounds{min: nmin, max: nmax}, nil
}

// MustNewOrderBounds is NewOrderBounds, panicking on error.
func MustNewOrderBounds(min, max Money) OrderBounds {
	b, err := NewOrderBounds(min, max)
	if err != nil {
		panic(err)
	}

	return b
}

// Min returns the lower bound.
func (b OrderBounds) Min() Money { return b.min }

// Max returns the upper bound.
func (b OrderBounds) Max() Money { return b.max }

// Contains reports whether amount falls within [min, max] inclusive,
// compared at the max of the bounds' scale and amount's scale. Requires
// matching currency.
func (b OrderBounds) Contains(amount Money) bool {
	if amount.Currency() != b.min.Currency() {
		return false
	}

	return Compare(b.min, amount) <= 0 && Compare(amount, b.max) <= 0
}
