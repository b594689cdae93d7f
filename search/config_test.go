package search_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/search"
	"github.com/stretchr/testify/require"
)

func zeroTolerance(t *testing.T) money.ToleranceWindow {
	t.Helper()
	w, err := money.NewToleranceWindow(decimal.Zero(money.ToleranceScale), decimal.Zero(money.ToleranceScale))
	require.NoError(t, err)

	return w
}

func TestNewConfig_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := search.NewConfig(zeroTolerance(t), 5)
	require.NoError(t, err)
	require.Equal(t, search.DefaultMinHops, cfg.MinHops())
	require.Equal(t, 5, cfg.MaxHops())
	require.Equal(t, search.DefaultTopK, cfg.TopK())
}

func TestNewConfig_RejectsInvertedHops(t *testing.T) {
	t.Parallel()

	_, err := search.NewConfig(zeroTolerance(t), 1, search.WithMinHops(3))
	require.ErrorIs(t, err, search.ErrHopsOutOfRange)
}

func TestNewConfig_RejectsNonPositiveTopK(t *testing.T) {
	t.Parallel()

	_, err := search.NewConfig(zeroTolerance(t), 5, search.WithTopK(0))
	require.ErrorIs(t, err, search.ErrTopKOutOfRange)
}

func TestNewConfig_RejectsNonPositiveGuardRails(t *testing.T) {
	t.Parallel()

	_, err := search.NewConfig(zeroTolerance(t), 5, search.WithMaxExpansions(0))
	require.ErrorIs(t, err, search.ErrGuardOutOfRange)

	_, err = search.NewConfig(zeroTolerance(t), 5, search.WithMaxVisitedStates(0))
	require.ErrorIs(t, err, search.ErrGuardOutOfRange)
}

func TestNewConfig_RejectsNegativeTimeBudget(t *testing.T) {
	t.Parallel()

	_, err := search.NewConfig(zeroTolerance(t), 5, search.WithTimeBudget(-1))
	require.ErrorIs(t, err, search.ErrTimeBudgetInvalid)
}

func TestNewConfig_WithOrderStrategyIgnoresNil(t *testing.T) {
	t.Parallel()

	cfg, err := search.NewConfig(zeroTolerance(t), 5, search.WithOrderStrategy(nil))
	require.NoError(t, err)
	require.Equal(t, 5, cfg.MaxHops())
}
