// Package decimal provides a fixed-scale HALF_UP arithmetic policy layered
// over github.com/shopspring/decimal.
//
// shopspring/decimal stores an arbitrary-precision coefficient and exponent
// natively, and supports several rounding modes. This package pins every
// operation to HALF_UP (round half away from zero) and makes "scale" (the
// number of digits after the decimal point) an explicit, first-class
// argument rather than an implicit property of the underlying value, so
// that every comparison, sum, and serialized amount in this module is
// reproducible across runs and platforms.
//
// AI-HINT (file):
//   - Never call shopspring/decimal's RoundBank (banker's rounding).
//     This package rounds through roundHalfUp, which calls shopspring's
//     Round method (half away from zero).
package decimal

import (
	"errors"
	"fmt"

	extdecimal "github.com/shopspring/decimal"
)

// Canonical scales used across the engine.
const (
	// Scale is the working precision for cost, product, tolerance, route
	// ratio, and residual comparisons.
	Scale = 18

	// RatioExtraScale is added on top of Scale when refining BUY-side
	// materialization ratios.
	RatioExtraScale = 4

	// SumExtraScale is extra precision reserved for additive aggregates.
	// Fee-map summation in package materialize adds at the operands' max
	// scale and does not apply it.
	SumExtraScale = 2
)

// ErrDivisionByZero indicates an attempted division by a zero divisor.
var ErrDivisionByZero = errors.New("decimal: division by zero")

// ErrNegativeScale indicates a negative scale was requested; scales are
// always a count of fractional digits, so they cannot be negative.
var ErrNegativeScale = errors.New("decimal: scale must be >= 0")

// Decimal is a fixed-scale decimal value: a coefficient at an explicit
// scale. The zero value is not meaningful; construct via NewFromString,
// NewFromInt64, Zero, One, or Normalize.
type Decimal struct {
	v     extdecimal.Decimal
	scale int32
}

// Zero returns 0 at the given scale.
func Zero(scale int) Decimal {
	return Decimal{v: extdecimal.Zero, scale: int32(scale)}
}

// One returns 1 at the given scale.
func One(scale int) Decimal {
	return Decimal{v: extdecimal.NewFromInt(1), scale: int32(scale)}
}

// NewFromString parses s (a plain decimal string, e.g. "123.450") and
// normalizes it to scale via HALF_UP rounding.
func NewFromString(s string, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrNegativeScale
	}
	raw, err := extdecimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("decimal: parse %q: %w", s, err)
	}

	return Decimal{v: roundHalfUp(raw, int32(scale)), scale: int32(scale)}, nil
}

// MustNewFromString is NewFromString, panicking on error. Intended for
// literals in tests and fixtures, not for parsing external input.
func MustNewFromString(s string, scale int) Decimal {
	d, err := NewFromString(s, scale)
	if err != nil {
		panic(err)
	}

	return d
}

// NewFromInt64 builds a Decimal from an integer numerator at the given
// scale, i.e. the value represents n (not n / 10^scale).
func NewFromInt64(n int64, scale int) Decimal {
	return Decimal{v: extdecimal.NewFromInt(n), scale: int32(scale)}
}

// Scale returns the number of fractional digits this value is normalized
// to.
func (d Decimal) Scale() int { return int(d.scale) }

// IsZero reports whether d is exactly zero.
func (d Decimal) IsZero() bool { return d.v.IsZero() }

// IsNegative reports whether d is strictly less than zero.
func (d Decimal) IsNegative() bool { return d.v.IsNegative() }

// IsPositive reports whether d is strictly greater than zero.
func (d Decimal) IsPositive() bool { return d.v.IsPositive() }

// String renders d at its declared scale, preserving trailing zeros.
func (d Decimal) String() string {
	return d.v.StringFixed(d.scale)
}

// Float64 returns the nearest float64 approximation of d. Intended only
// for non-authoritative use (e.g. sampling, test fixtures); never use the
// result for a comparison or a stored amount.
func (d Decimal) Float64() float64 {
	f, _ := d.v.Float64()

	return f
}

// Normalize rescales d to the target scale using HALF_UP rounding.
func Normalize(d Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrNegativeScale
	}

	return Decimal{v: roundHalfUp(d.v, int32(scale)), scale: int32(scale)}, nil
}

// Add returns a+b normalized to scale via HALF_UP.
func Add(a, b Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrNegativeScale
	}

	return Decimal{v: roundHalfUp(a.v.Add(b.v), int32(scale)), scale: int32(scale)}, nil
}

// Sub returns a-b normalized to scale via HALF_UP.
func Sub(a, b Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrNegativeScale
	}

	return Decimal{v: roundHalfUp(a.v.Sub(b.v), int32(scale)), scale: int32(scale)}, nil
}

// Mul returns a*b normalized to scale via HALF_UP.
func Mul(a, b Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrNegativeScale
	}

	return Decimal{v: roundHalfUp(a.v.Mul(b.v), int32(scale)), scale: int32(scale)}, nil
}

// Div returns a/b normalized to scale via HALF_UP. Fails with
// ErrDivisionByZero when b is zero.
func Div(a, b Decimal, scale int) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, ErrNegativeScale
	}
	if b.v.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	// Compute with headroom beyond the requested scale so the final
	// HALF_UP rounding sees enough fractional digits to round correctly.
	q := a.v.DivRound(b.v, int32(scale)+extraDivGuardDigits)

	return Decimal{v: roundHalfUp(q, int32(scale)), scale: int32(scale)}, nil
}

// extraDivGuardDigits is the number of extra fractional digits computed by
// DivRound before the final HALF_UP rounding collapses to the caller's
// requested scale; it absorbs the guard-digit uncertainty DivRound itself
// introduces.
const extraDivGuardDigits = 10

// Compare returns -1, 0, or +1 as a<b, a==b, or a>b after normalizing both
// operands to the max of their declared scales (per decimal.Compare in
// the broader engine: equality is defined post-normalization).
func Compare(a, b Decimal) int {
	s := a.scale
	if b.scale > s {
		s = b.scale
	}
	na := roundHalfUp(a.v, s)
	nb := roundHalfUp(b.v, s)

	return na.Cmp(nb)
}

// Equal reports whether a and b compare equal per Compare.
func Equal(a, b Decimal) bool { return Compare(a, b) == 0 }

// roundHalfUp rounds v to scale fractional digits, rounding the exact
// halfway case away from zero rather than to even (shopspring/decimal's
// Round method already implements half-away-from-zero, distinct from its
// RoundBank method which implements banker's rounding; this wrapper
// exists so every call site in this module names the policy explicitly
// instead of relying on which method happens to be "the default").
func roundHalfUp(v extdecimal.Decimal, scale int32) extdecimal.Decimal {
	return v.Round(scale)
}
