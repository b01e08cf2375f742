package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyAmount is a signed amount in a single currency.
// Positive means receive, negative means pay.
type CurrencyAmount struct {
	Currency Currency
	Amount   float64
}

// NewAmount constructs a CurrencyAmount.
func NewAmount(ccy Currency, amount float64) CurrencyAmount {
	return CurrencyAmount{Currency: ccy, Amount: amount}
}

// Plus adds another amount in the same currency.
func (a CurrencyAmount) Plus(b CurrencyAmount) (CurrencyAmount, error) {
	if a.Currency != b.Currency {
		return CurrencyAmount{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, a.Currency, b.Currency)
	}
	return CurrencyAmount{Currency: a.Currency, Amount: a.Amount + b.Amount}, nil
}

// MultipliedBy scales the amount by a scalar.
func (a CurrencyAmount) MultipliedBy(k float64) CurrencyAmount {
	return CurrencyAmount{Currency: a.Currency, Amount: a.Amount * k}
}

// Negated flips the sign.
func (a CurrencyAmount) Negated() CurrencyAmount {
	return CurrencyAmount{Currency: a.Currency, Amount: -a.Amount}
}

// IsZero reports whether the amount is exactly zero.
func (a CurrencyAmount) IsZero() bool {
	return a.Amount == 0
}

// ConvertedTo converts the amount using the given rate. The rate must quote
// the amount's currency on one side.
func (a CurrencyAmount) ConvertedTo(target Currency, rate FxRate) (CurrencyAmount, error) {
	if a.Currency == target {
		return a, nil
	}
	r, err := rate.ConversionRate(a.Currency, target)
	if err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{Currency: target, Amount: a.Amount * r}, nil
}

// String renders the amount rounded to the currency's minor units, e.g.
// "USD 980000.00". Rounding happens in decimal space to keep display exact.
func (a CurrencyAmount) String() string {
	d := decimal.NewFromFloat(a.Amount)
	return fmt.Sprintf("%s %s", a.Currency, d.StringFixed(int32(a.Currency.MinorUnits())))
}
