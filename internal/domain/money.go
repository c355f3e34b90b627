package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// String renders the amount at the currency's standard scale, e.g. "CNY 1299.00".
// Amount itself is not rounded.
func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)

	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(int32(scale)))
}
