package money

import (
	"errors"
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/decimal"
)

// ErrToleranceOutOfRange indicates a tolerance bound outside [0, 1).
var ErrToleranceOutOfRange = errors.New("money: tolerance must be in [0,1)")

// ErrToleranceInverted indicates minimum > maximum.
var ErrToleranceInverted = errors.New("money: tolerance minimum must be <= maximum")

// ToleranceScale is the fixed scale at which tolerance bounds are stored.
const ToleranceScale = 18

// HeuristicSource names which bound a ToleranceWindow's heuristic
// tolerance was drawn from.
type HeuristicSource int

const (
	// HeuristicFromMaximum indicates the heuristic equals Maximum()
	// because Maximum is nonzero.
	HeuristicFromMaximum HeuristicSource = iota
	// HeuristicFromMinimum indicates the heuristic equals Minimum()
	// because Maximum is zero.
	HeuristicFromMinimum
)

// String renders the HeuristicSource for diagnostics.
func (s HeuristicSource) String() string {
	switch s {
	case HeuristicFromMaximum:
		return "maximum"
	case HeuristicFromMinimum:
		return "minimum"
	default:
		return "unknown"
	}
}

// ToleranceWindow bounds how far a materialized spend may deviate from a
// desired amount, expressed as fractions in [0, 1).
type ToleranceWindow struct {
	minimum decimal.Decimal
	maximum decimal.Decimal
}

// NewToleranceWindow validates both bounds lie in [0,1), minimum <=
// maximum, and stores them at ToleranceScale.
func NewToleranceWindow(minimum, maximum decimal.Decimal) (ToleranceWindow, error) {
	min, err := decimal.Normalize(minimum, ToleranceScale)
	if err != nil {
		return ToleranceWindow{}, err
	}
	max, err := decimal.Normalize(maximum, ToleranceScale)
	if err != nil {
		return ToleranceWindow{}, err
	}
	one := decimal.One(ToleranceScale)
	zero := decimal.Zero(ToleranceScale)
	if decimal.Compare(min, zero) < 0 || decimal.Compare(min, one) >= 0 {
		return ToleranceWindow{}, fmt.Errorf("%w: minimum=%s", ErrToleranceOutOfRange, min)
	}
	if decimal.Compare(max, zero) < 0 || decimal.Compare(max, one) >= 0 {
		return ToleranceWindow{}, fmt.Errorf("%w: maximum=%s", ErrToleranceOutOfRange, max)
	}
	if decimal.Compare(min, max) > 0 {
		return ToleranceWindow{}, fmt.Errorf("%w: minimum=%s maximum=%s", ErrToleranceInverted, min, max)
	}

	return ToleranceWindow{minimum: min, maximum: max}, nil
}

// MustNewToleranceWindow is NewToleranceWindow, panicking on error.
func MustNewToleranceWindow(minimum, maximum decimal.Decimal) ToleranceWindow {
	w, err := NewToleranceWindow(minimum, maximum)
	if err != nil {
		panic(err)
	}

	return w
}

// Minimum returns the lower tolerance bound.
func (w ToleranceWindow) Minimum() decimal.Decimal { return w.minimum }

// Maximum returns the upper tolerance bound.
func (w ToleranceWindow) Maximum() decimal.Decimal { return w.maximum }

// Heuristic returns Maximum if it is nonzero, else Minimum, along with a
// tag recording which bound was selected.
func (w ToleranceWindow) Heuristic() (decimal.Decimal, HeuristicSource) {
	if !w.maximum.IsZero() {
		return w.maximum, HeuristicFromMaximum
	}

	return w.minimum, HeuristicFromMinimum
}

// Contains reports whether residual falls within [minimum, maximum]
// inclusive. Per the engine's edge-case rule, a residual of exactly 1.0
// is never in range regardless of the declared maximum (tolerances are
// themselves constrained to [0,1), so this is enforced by construction).
func (w ToleranceWindow) Contains(residual decimal.Decimal) bool {
	return decimal.Compare(w.minimum, residual) <= 0 && decimal.Compare(residual, w.maximum) <= 0
}
