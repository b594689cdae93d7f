package orderbook

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
)

// decimalFromFloat converts a plain float64 ratio (e.g. a fee rate like
// 0.001) into a Decimal at scale. Intended only for configuration-time
// constants, never for amounts derived from search state.
func decimalFromFloat(f float64, scale int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(fmt.Sprintf("%.*f", scale+extraFloatDigits, f), scale)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return d, nil
}

// extraFloatDigits gives the string formatter enough fractional digits to
// round correctly at the target scale before HALF_UP truncates it.
const extraFloatDigits = 6

func mulMoney(m money.Money, ratio decimal.Decimal) (money.Money, error) {
	product, err := decimal.Mul(m.Amount(), ratio, m.Scale())
	if err != nil {
		return money.Money{}, err
	}

	return money.New(m.Currency(), product, m.Scale())
}
