package materialize

import (
	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
)

// ToleranceEvaluator computes how far a materialized Path's actual spend
// drifted from a caller's desired spend, and accepts or rejects the path
// against a money.ToleranceWindow.
type ToleranceEvaluator struct{}

// NewToleranceEvaluator returns a ready-to-use ToleranceEvaluator. It
// carries no state.
func NewToleranceEvaluator() ToleranceEvaluator { return ToleranceEvaluator{} }

// Evaluate returns the residual tolerance of path.TotalSpent against
// desired, and ok=false when the residual falls outside window or the
// degenerate desired-is-zero rule rejects the path.
func (ToleranceEvaluator) Evaluate(path Path, desired money.Money, window money.ToleranceWindow) (decimal.Decimal, bool, error) {
	if desired.IsZero() {
		zero := decimal.Zero(money.ToleranceScale)
		if path.TotalSpent.IsZero() {
			return zero, true, nil
		}

		return zero, false, nil
	}

	diff, err := decimal.Sub(path.TotalSpent.Amount(), desired.Amount(), money.ToleranceScale)
	if err != nil {
		return decimal.Decimal{}, false, err
	}
	if diff.IsNegative() {
		diff, err = decimal.Sub(decimal.Zero(money.ToleranceScale), diff, money.ToleranceScale)
		if err != nil {
			return decimal.Decimal{}, false, err
		}
	}
	residual, err := decimal.Div(diff, desired.Amount(), money.ToleranceScale)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	// A residual of exactly 1.0 is always out-of-range, even if window's
	// maximum happens to be configured at its ceiling.
	one := decimal.One(money.ToleranceScale)
	if decimal.Compare(residual, one) >= 0 {
		return residual, false, nil
	}

	return residual, window.Contains(residual), nil
}
