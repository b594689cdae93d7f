package money_test

import (
	"encoding/json"
	"testing"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesCurrencyAndScale(t *testing.T) {
	t.Parallel()

	m, err := money.New("usd", decimal.MustNewFromString("10.50", 2), 2)
	require.NoError(t, err)
	require.Equal(t, "USD", m.Currency(), "currency is uppercased on construction")

	_, err = money.New("US", decimal.Zero(2), 2)
	require.ErrorIs(t, err, money.ErrInvalidCurrency)

	_, err = money.New("USD", decimal.Zero(2), -1)
	require.ErrorIs(t, err, money.ErrScaleOutOfRange)

	_, err = money.New("USD", decimal.MustNewFromString("-1", 2), 2)
	require.ErrorIs(t, err, money.ErrNegativeAmount)
}

func TestAddSub_RequireMatchingCurrency(t *testing.T) {
	t.Parallel()

	usd := money.MustNew("USD", decimal.MustNewFromString("10", 2), 2)
	eur := money.MustNew("EUR", decimal.MustNewFromString("5", 2), 2)

	_, err := money.Add(usd, eur)
	require.ErrorIs(t, err, money.ErrCurrencyMismatch)

	sum, err := money.Add(usd, usd)
	require.NoError(t, err)
	require.Equal(t, "20.00", sum.Amount().String())
}

func TestSub_InsufficientFunds(t *testing.T) {
	t.Parallel()

	small := money.MustNew("USD", decimal.MustNewFromString("1", 2), 2)
	big := money.MustNew("USD", decimal.MustNewFromString("2", 2), 2)

	_, err := money.Sub(small, big)
	require.ErrorIs(t, err, money.ErrInsufficientFunds)
}

func TestCompare_OrdersByCurrencyThenAmount(t *testing.T) {
	t.Parallel()

	a := money.MustNew("USD", decimal.MustNewFromString("1", 2), 2)
	b := money.MustNew("USD", decimal.MustNewFromString("2", 2), 2)
	require.Negative(t, money.Compare(a, b))

	eur := money.MustNew("EUR", decimal.MustNewFromString("1", 2), 2)
	require.NotZero(t, money.Compare(a, eur), "mismatched currencies never compare equal")
}

func TestExchangeRate_ConvertAndInvert(t *testing.T) {
	t.Parallel()

	rate := money.MustNewExchangeRate("USD", "EUR", decimal.MustNewFromString("0.9", 4), 4)
	usd := money.MustNew("USD", decimal.MustNewFromString("100", 2), 2)

	eur, err := rate.Convert(usd)
	require.NoError(t, err)
	require.Equal(t, "EUR", eur.Currency())
	require.Equal(t, "90.0000", eur.Amount().String())

	inv, err := rate.Invert()
	require.NoError(t, err)
	require.Equal(t, "USD", inv.Quote())
	require.Equal(t, "EUR", inv.Base())

	_, err = money.NewExchangeRate("USD", "USD", decimal.MustNewFromString("1", 2), 2)
	require.ErrorIs(t, err, money.ErrSameCurrency)

	_, err = money.NewExchangeRate("USD", "EUR", decimal.Zero(2), 2)
	require.ErrorIs(t, err, money.ErrNonPositiveRate)
}

func TestOrderBounds_ValidatesAndContains(t *testing.T) {
	t.Parallel()

	min := money.MustNew("USD", decimal.MustNewFromString("10", 2), 2)
	max := money.MustNew("USD", decimal.MustNewFromString("100", 2), 2)

	bounds, err := money.NewOrderBounds(min, max)
	require.NoError(t, err)
	require.True(t, bounds.Contains(money.MustNew("USD", decimal.MustNewFromString("50", 2), 2)))
	require.False(t, bounds.Contains(money.MustNew("USD", decimal.MustNewFromString("5", 2), 2)))

	_, err = money.NewOrderBounds(max, min)
	require.ErrorIs(t, err, money.ErrBoundsInverted)

	eur := money.MustNew("EUR", decimal.MustNewFromString("1", 2), 2)
	_, err = money.NewOrderBounds(min, eur)
	require.ErrorIs(t, err, money.ErrBoundsCurrencyMismatch)
}

func TestToleranceWindow_ValidatesAndContains(t *testing.T) {
	t.Parallel()

	w, err := money.NewToleranceWindow(
		decimal.MustNewFromString("0.01", 4),
		decimal.MustNewFromString("0.02", 4),
	)
	require.NoError(t, err)
	require.True(t, w.Contains(decimal.MustNewFromString("0.015", 4)))
	require.False(t, w.Contains(decimal.MustNewFromString("0.03", 4)))

	heuristic, source := w.Heuristic()
	require.Equal(t, "0.0200", heuristic.String()[:6])
	require.Equal(t, money.HeuristicFromMaximum, source)

	_, err = money.NewToleranceWindow(
		decimal.MustNewFromString("0.02", 4),
		decimal.MustNewFromString("0.01", 4),
	)
	require.ErrorIs(t, err, money.ErrToleranceInverted)
}

func TestMoney_MarshalJSON_MatchesWireShape(t *testing.T) {
	t.Parallel()

	m := money.MustNew("usd", decimal.MustNewFromString("100", 2), 2)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"currency":"USD","amount":"100.00","scale":2}`, string(out))
}

func TestMoney_MarshalJSON_PreservesTrailingZeros(t *testing.T) {
	t.Parallel()

	m := money.MustNew("BTC", decimal.MustNewFromString("0.002", 8), 8)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `{"currency":"BTC","amount":"0.00200000","scale":8}`, string(out))
}
