package bookgen

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/orderbook"
	"github.com/stretchr/testify/require"
)

func TestNewGenConfig_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg := newGenConfig()
	require.Equal(t, DefaultScale, cfg.scale)
	require.Equal(t, 1.0, cfg.rateFn("USD", "EUR", 0))
	min, max := cfg.boundsFn("USD", "EUR", 0)
	require.Equal(t, 1.0, min)
	require.Equal(t, 1000.0, max)
	require.IsType(t, orderbook.NoFeePolicy{}, cfg.feePolicy)
}

func TestWithScale_IgnoresNonPositiveValues(t *testing.T) {
	t.Parallel()

	cfg := newGenConfig(WithScale(0), WithScale(-3))
	require.Equal(t, DefaultScale, cfg.scale)

	cfg = newGenConfig(WithScale(4))
	require.Equal(t, 4, cfg.scale)
}

func TestWithFeePolicy_NilIsNoOp(t *testing.T) {
	t.Parallel()

	cfg := newGenConfig(WithFeePolicy(nil))
	require.IsType(t, orderbook.NoFeePolicy{}, cfg.feePolicy)
}

func TestNormalizeCurrencies_RejectsEmptyCode(t *testing.T) {
	t.Parallel()

	_, err := normalizeCurrencies([]string{"USD", ""})
	require.ErrorIs(t, err, ErrEmptyCurrency)
}

func TestNormalizeCurrencies_RejectsDuplicate(t *testing.T) {
	t.Parallel()

	_, err := normalizeCurrencies([]string{"usd", "USD"})
	require.ErrorIs(t, err, ErrDuplicateCurrency)
}

func TestNormalizeCurrencies_TrimsAndUppercases(t *testing.T) {
	t.Parallel()

	out, err := normalizeCurrencies([]string{" usd ", "eur"})
	require.NoError(t, err)
	require.Equal(t, []string{"USD", "EUR"}, out)
}
