// Package fx prices simple two-currency FX forwards: present value, currency
// exposure, par spread, forward rate, and zero-rate curve sensitivity.
package fx

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/fxlib/currency"
)

// ErrInvalidProduct is returned when a product violates a structural
// invariant, such as both legs sharing a currency or a zero base notional
// where one is required.
var ErrInvalidProduct = errors.New("invalid product")

// Payment is a fixed payment of a signed amount in a single currency on a
// date. Positive means receive, negative means pay. Payments are created at
// product expansion and read-only thereafter.
type Payment struct {
	Currency currency.Currency
	Amount   float64
	Date     time.Time
}

// CurrencyAmount returns the payment's amount as a currency amount.
func (p Payment) CurrencyAmount() currency.CurrencyAmount {
	return currency.NewAmount(p.Currency, p.Amount)
}

// ExpandedFx is the expanded form of an FX forward: exactly two payments in
// different currencies settling on the same date.
type ExpandedFx struct {
	BasePayment    Payment
	CounterPayment Payment
}

// PaymentDate returns the shared settlement date of both payments.
func (e ExpandedFx) PaymentDate() time.Time {
	return e.BasePayment.Date
}

// FxForward is a single-settlement FX forward: an exchange of two fixed
// amounts in different currencies on one payment date. By convention the two
// notionals carry opposite signs, though this is not enforced; only distinct
// currencies and matching dates are structural requirements.
type FxForward struct {
	base        currency.CurrencyAmount
	counter     currency.CurrencyAmount
	paymentDate time.Time
}

// NewForward constructs a forward from explicit leg amounts.
func NewForward(base, counter currency.CurrencyAmount, paymentDate time.Time) (FxForward, error) {
	if base.Currency == counter.Currency {
		return FxForward{}, fmt.Errorf("%w: legs must be in different currencies, got %s", ErrInvalidProduct, base.Currency)
	}
	if paymentDate.IsZero() {
		return FxForward{}, fmt.Errorf("%w: payment date is required", ErrInvalidProduct)
	}
	return FxForward{base: base, counter: counter, paymentDate: paymentDate}, nil
}

// ForwardFromRate constructs a forward from the base leg and an agreed
// forward rate: the counter amount is -base × rate. The rate must quote the
// base leg's currency on one side.
func ForwardFromRate(base currency.CurrencyAmount, rate currency.FxRate, paymentDate time.Time) (FxForward, error) {
	var counterCcy currency.Currency
	switch base.Currency {
	case rate.Base:
		counterCcy = rate.Counter
	case rate.Counter:
		counterCcy = rate.Base
	default:
		return FxForward{}, fmt.Errorf("%w: rate %s does not quote %s", ErrInvalidProduct, rate, base.Currency)
	}
	r, err := rate.ConversionRate(base.Currency, counterCcy)
	if err != nil {
		return FxForward{}, err
	}
	counter := currency.NewAmount(counterCcy, -base.Amount*r)
	return NewForward(base, counter, paymentDate)
}

// BaseAmount returns the base leg's notional.
func (f FxForward) BaseAmount() currency.CurrencyAmount {
	return f.base
}

// CounterAmount returns the counter leg's notional.
func (f FxForward) CounterAmount() currency.CurrencyAmount {
	return f.counter
}

// PaymentDate returns the settlement date.
func (f FxForward) PaymentDate() time.Time {
	return f.paymentDate
}

// Expand produces the immutable two-payment form of the forward.
func (f FxForward) Expand() (ExpandedFx, error) {
	if f.base.Currency == f.counter.Currency {
		return ExpandedFx{}, fmt.Errorf("%w: legs must be in different currencies, got %s", ErrInvalidProduct, f.base.Currency)
	}
	if f.paymentDate.IsZero() {
		return ExpandedFx{}, fmt.Errorf("%w: payment date is required", ErrInvalidProduct)
	}
	return ExpandedFx{
		BasePayment:    Payment{Currency: f.base.Currency, Amount: f.base.Amount, Date: f.paymentDate},
		CounterPayment: Payment{Currency: f.counter.Currency, Amount: f.counter.Amount, Date: f.paymentDate},
	}, nil
}
