package search

import (
	"github.com/somework/p2p-path-finder-sub001/decimal"
	"github.com/somework/p2p-path-finder-sub001/money"
)

func decimalOne() decimal.Decimal { return decimal.One(decimal.Scale) }

func moneyPtr(m money.Money) *money.Money { return &m }

func mulDecimal(a, b decimal.Decimal) (decimal.Decimal, error) {
	return decimal.Mul(a, b, decimal.Scale)
}

func mulThree(a, b, c decimal.Decimal) (decimal.Decimal, error) {
	ab, err := decimal.Mul(a, b, decimal.Scale)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.Mul(ab, c, decimal.Scale)
}
