// Package money defines the typed value objects that carry amounts through
// the path-search engine: Money, ExchangeRate, OrderBounds, and
// ToleranceWindow. All four are constructed once by validating
// constructors and never mutated afterward.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/somework/p2p-path-finder-sub001/decimal"
)

// Sentinel errors for money-package validation failures. Callers should
// branch on these with errors.Is; messages are not part of the contract.
var (
	// ErrInvalidCurrency indicates a currency code outside the 3-12
	// uppercase-alphabetic contract (case-insensitive on input).
	ErrInvalidCurrency = errors.New("money: invalid currency code")

	// ErrNegativeAmount indicates an amount below zero was supplied where
	// non-negative is required.
	ErrNegativeAmount = errors.New("money: amount must be >= 0")

	// ErrScaleOutOfRange indicates a scale outside [0, 50].
	ErrScaleOutOfRange = errors.New("money: scale out of range")

	// ErrCurrencyMismatch indicates a binary operation was attempted
	// between two Money values of different currencies.
	ErrCurrencyMismatch = errors.New("money: currency mismatch")

	// ErrInsufficientFunds indicates a subtraction would drive the result
	// below zero.
	ErrInsufficientFunds = errors.New("money: subtraction would go negative")
)

// MaxScale is the highest scale a Money value may declare.
const MaxScale = 50

// Money is a non-negative amount of a single currency at a fixed scale.
type Money struct {
	currency string
	amount   decimal.Decimal
	scale    int
}

// New constructs a Money, validating the currency code, non-negativity,
// and scale bounds. The currency is uppercased before storage.
func New(currency string, amount decimal.Decimal, scale int) (Money, error) {
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	if scale < 0 || scale > MaxScale {
		return Money{}, fmt.Errorf("%w: got %d", ErrScaleOutOfRange, scale)
	}
	norm, err := decimal.Normalize(amount, scale)
	if err != nil {
		return Money{}, fmt.Errorf("money: normalize amount: %w", err)
	}
	if norm.IsNegative() {
		return Money{}, ErrNegativeAmount
	}

	return Money{currency: cur, amount: norm, scale: scale}, nil
}

// MustNew is New, panicking on error. Intended for fixtures and tests.
func MustNew(currency string, amount decimal.Decimal, scale int) Money {
	m, err := New(currency, amount, scale)
	if err != nil {
		panic(err)
	}

	return m
}

// Currency returns the uppercased 3-12 character currency code.
func (m Money) Currency() string { return m.currency }

// Amount returns the underlying normalized Decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Scale returns the declared scale.
func (m Money) Scale() int { return m.scale }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// String renders "<amount> <currency>" using the amount's fixed-scale
// representation.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

// moneyWire is Money's wire shape: the amount rendered as a fixed-scale
// decimal string with trailing zeros preserved, per SPEC_FULL.md §6.2.
type moneyWire struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Scale    int    `json:"scale"`
}

// MarshalJSON renders m as {"currency","amount","scale"}, with amount a
// decimal string at m's declared scale. Money's fields are unexported, so
// this is required for any caller serializing a value that embeds one.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyWire{Currency: m.currency, Amount: m.amount.String(), Scale: m.scale})
}

// resultScale is the scale a binary operation yields when the caller does
// not explicitly override it: the max of the two operand scales.
func resultScale(a, b Money) int {
	if a.scale > b.scale {
		return a.scale
	}

	return b.scale
}

// Add returns a+b. Requires matching currency; result scale is
// max(a.scale, b.scale).
func Add(a, b Money) (Money, error) {
	if a.currency != b.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.currency, b.currency)
	}
	scale := resultScale(a, b)
	sum, err := decimal.Add(a.amount, b.amount, scale)
	if err != nil {
		return Money{}, err
	}

	return Money{currency: a.currency, amount: sum, scale: scale}, nil
}

// Sub returns a-b. Requires matching currency and a non-negative result;
// fails with ErrInsufficientFunds if b exceeds a.
func Sub(a, b Money) (Money, error) {
	if a.currency != b.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.currency, b.currency)
	}
	scale := resultScale(a, b)
	diff, err := decimal.Sub(a.amount, b.amount, scale)
	if err != nil {
		return Money{}, err
	}
	if diff.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrInsufficientFunds, a, b)
	}

	return Money{currency: a.currency, amount: diff, scale: scale}, nil
}

// Compare orders a and b by amount after normalizing both to the max of
// their scales. Panics is never raised; mismatched currencies compare by
// currency code first so ordering remains total even across currencies
// (callers that require same-currency comparisons should check Currency
// themselves).
func Compare(a, b Money) int {
	if a.currency != b.currency {
		return strings.Compare(a.currency, b.currency)
	}

	return decimal.Compare(a.amount, b.amount)
}

// WithAmount returns a copy of m with a new amount, re-validated and
// re-normalized at m's existing scale.
func (m Money) WithAmount(amount decimal.Decimal) (Money, error) {
	return New(m.currency, amount, m.scale)
}

func normalizeCurrency(raw string) (string, error) {
	cur := strings.ToUpper(strings.TrimSpace(raw))
	if len(cur) < 3 || len(cur) > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}
	for _, r := range cur {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
		}
	}

	return cur, nil
}
