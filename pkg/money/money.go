// Package money provides currency formatting for transaction amounts.
// It backs display with go-money so minor-unit rounding and symbol
// placement follow ISO-4217 rather than hand-rolled printf formats.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders an amount in US dollar display form, e.g. "$1,234.56".
// Statement amounts are signed floats; conversion to minor units goes
// through decimal to avoid float drift at the cent boundary.
func Format(amount float64) string {
	return FormatWithCode(amount, money.USD)
}

// FormatWithCode renders an amount in the display form of the given
// ISO-4217 currency code. Unknown codes fall back to USD.
func FormatWithCode(amount float64, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(money.USD)
	}

	d := decimal.NewFromFloat(amount)
	minor := d.Mul(decimal.New(1, int32(currency.Fraction))).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}
