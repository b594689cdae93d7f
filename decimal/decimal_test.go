package decimal_test

import (
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewFromString_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	d, err := decimal.NewFromString("1.005", 2)
	require.NoError(t, err)
	require.Equal(t, "1.01", d.String(), "HALF_UP must round the exact halfway case away from zero")

	d, err = decimal.NewFromString("-1.005", 2)
	require.NoError(t, err)
	require.Equal(t, "-1.01", d.String(), "HALF_UP rounds away from zero on the negative side too")
}

func TestArithmetic_FixedScale(t *testing.T) {
	t.Parallel()

	a := decimal.MustNewFromString("10.5", 4)
	b := decimal.MustNewFromString("3.25", 4)

	sum, err := decimal.Add(a, b, 4)
	require.NoError(t, err)
	require.Equal(t, "13.7500", sum.String())

	diff, err := decimal.Sub(a, b, 4)
	require.NoError(t, err)
	require.Equal(t, "7.2500", diff.String())

	prod, err := decimal.Mul(a, b, 4)
	require.NoError(t, err)
	require.Equal(t, "34.1250", prod.String())

	quot, err := decimal.Div(a, b, 4)
	require.NoError(t, err)
	require.Equal(t, "3.2308", quot.String())
}

func TestDiv_ByZero(t *testing.T) {
	t.Parallel()

	a := decimal.MustNewFromString("1", 2)
	zero := decimal.Zero(2)

	_, err := decimal.Div(a, zero, 2)
	require.ErrorIs(t, err, decimal.ErrDivisionByZero)
}

func TestNegativeScale_Rejected(t *testing.T) {
	t.Parallel()

	_, err := decimal.NewFromString("1", -1)
	require.ErrorIs(t, err, decimal.ErrNegativeScale)
}

func TestCompare_NormalizesToMaxScale(t *testing.T) {
	t.Parallel()

	a := decimal.MustNewFromString("1.1", 1)
	b := decimal.MustNewFromString("1.10", 2)

	require.True(t, decimal.Equal(a, b))
	require.Equal(t, 0, decimal.Compare(a, b))
}

func TestNormalize_RoundsDownScale(t *testing.T) {
	t.Parallel()

	a := decimal.MustNewFromString("1.2345", 4)
	b, err := decimal.Normalize(a, 2)
	require.NoError(t, err)
	require.Equal(t, "1.23", b.String())
}
