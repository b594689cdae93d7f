package materialize_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/materialize"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/stretchr/testify/require"
)

func spentPath(t *testing.T, currency, amount string) materialize.Path {
	t.Helper()

	return materialize.Path{
		TotalSpent: money.MustNew(currency, decimal.MustNewFromString(amount, 8), 8),
	}
}

func window(t *testing.T, min, max string) money.ToleranceWindow {
	t.Helper()
	w, err := money.NewToleranceWindow(
		decimal.MustNewFromString(min, money.ToleranceScale),
		decimal.MustNewFromString(max, money.ToleranceScale),
	)
	require.NoError(t, err)

	return w
}

func TestToleranceEvaluator_ZeroDesiredAcceptsZeroSpend(t *testing.T) {
	t.Parallel()

	evaluator := materialize.NewToleranceEvaluator()
	path := spentPath(t, "USD", "0")
	desired := money.MustNew("USD", decimal.Zero(8), 8)

	residual, ok, err := evaluator.Evaluate(path, desired, window(t, "0", "0.1"))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, residual.IsZero())
}

func TestToleranceEvaluator_ZeroDesiredRejectsNonzeroSpend(t *testing.T) {
	t.Parallel()

	evaluator := materialize.NewToleranceEvaluator()
	path := spentPath(t, "USD", "5")
	desired := money.MustNew("USD", decimal.Zero(8), 8)

	residual, ok, err := evaluator.Evaluate(path, desired, window(t, "0", "0.999999999999999999"))
	require.NoError(t, err)
	require.False(t, ok, "spending anything against a zero desired amount is always out of range")
	require.True(t, residual.IsZero())
}

func TestToleranceEvaluator_ComputesResidualWithinWindow(t *testing.T) {
	t.Parallel()

	evaluator := materialize.NewToleranceEvaluator()
	path := spentPath(t, "USD", "95")
	desired := money.MustNew("USD", decimal.MustNewFromString("100", 8), 8)

	residual, ok, err := evaluator.Evaluate(path, desired, window(t, "0", "0.1"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "0.050000000000000000", residual.String())
}

func TestToleranceEvaluator_RejectsResidualOutsideWindow(t *testing.T) {
	t.Parallel()

	evaluator := materialize.NewToleranceEvaluator()
	path := spentPath(t, "USD", "80")
	desired := money.MustNew("USD", decimal.MustNewFromString("100", 8), 8)

	residual, ok, err := evaluator.Evaluate(path, desired, window(t, "0", "0.1"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "0.200000000000000000", residual.String())
}

func TestToleranceEvaluator_OverspendIsSymmetricWithUnderspend(t *testing.T) {
	t.Parallel()

	evaluator := materialize.NewToleranceEvaluator()
	path := spentPath(t, "USD", "105")
	desired := money.MustNew("USD", decimal.MustNewFromString("100", 8), 8)

	residual, ok, err := evaluator.Evaluate(path, desired, window(t, "0", "0.1"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "0.050000000000000000", residual.String())
}

func TestToleranceEvaluator_ResidualOfExactlyOneIsAlwaysRejected(t *testing.T) {
	t.Parallel()

	evaluator := materialize.NewToleranceEvaluator()
	path := spentPath(t, "USD", "0")
	desired := money.MustNew("USD", decimal.MustNewFromString("100", 8), 8)

	// window's maximum is configured permissively close to its own
	// ceiling, but a residual of exactly 1.0 must still be rejected.
	residual, ok, err := evaluator.Evaluate(path, desired, window(t, "0", "0.999999999999999999"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "1.000000000000000000", residual.String())
}
