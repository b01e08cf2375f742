package fx

import (
	"fmt"

	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/market"
)

// PresentValue computes the present value of the forward by discounting each
// payment in its own currency, returned in the two natural currencies.
//
// When the provider's valuation date is strictly after the payment date, the
// trade has settled and the empty amount is returned without touching the
// curves. Valuation exactly on the payment date still prices normally.
func PresentValue(fwd FxForward, provider market.RatesProvider) (currency.MultiCurrencyAmount, error) {
	expanded, err := fwd.Expand()
	if err != nil {
		return currency.MultiCurrencyAmount{}, err
	}
	if provider.ValuationDate().After(expanded.PaymentDate()) {
		return currency.MultiCurrencyAmount{}, nil
	}
	pvBase, err := PresentValuePayment(expanded.BasePayment, provider)
	if err != nil {
		return currency.MultiCurrencyAmount{}, err
	}
	pvCounter, err := PresentValuePayment(expanded.CounterPayment, provider)
	if err != nil {
		return currency.MultiCurrencyAmount{}, err
	}
	return currency.NewMultiCurrencyAmount(pvBase, pvCounter), nil
}

// PresentValuePayment computes the present value of a single payment:
// amount × df(currency, date). Extrapolation for past or far-future dates is
// owned by the discount curve, not checked here.
func PresentValuePayment(p Payment, provider market.RatesProvider) (currency.CurrencyAmount, error) {
	df, err := provider.DiscountFactor(p.Currency, p.Date)
	if err != nil {
		return currency.CurrencyAmount{}, err
	}
	return p.CurrencyAmount().MultipliedBy(df), nil
}

// CurrencyExposure computes the currency exposure of the forward. For an
// undiscounted-principal forward this is by definition the present value.
func CurrencyExposure(fwd FxForward, provider market.RatesProvider) (currency.MultiCurrencyAmount, error) {
	return PresentValue(fwd, provider)
}

// ParSpread computes the uniform spread that, added to the forward points,
// would bring the forward's value to zero:
//
//	spread = PV_counterCcy / (notionalBase × df(counterCcy, paymentDate))
//
// A zero base notional is rejected rather than divided through.
func ParSpread(fwd FxForward, provider market.RatesProvider) (float64, error) {
	expanded, err := fwd.Expand()
	if err != nil {
		return 0, err
	}
	if expanded.BasePayment.Amount == 0 {
		return 0, fmt.Errorf("%w: par spread requires a non-zero base notional", ErrInvalidProduct)
	}
	pv, err := PresentValue(fwd, provider)
	if err != nil {
		return 0, err
	}
	pvCounterCcy, err := provider.Convert(pv, expanded.CounterPayment.Currency)
	if err != nil {
		return 0, err
	}
	dfEnd, err := provider.DiscountFactor(expanded.CounterPayment.Currency, expanded.PaymentDate())
	if err != nil {
		return 0, err
	}
	return pvCounterCcy.Amount / (expanded.BasePayment.Amount * dfEnd), nil
}

// ForwardRate computes the covered-interest-parity forward rate between the
// two leg currencies at the payment date:
//
//	rate = spot(base, counter) × df(base, baseDate) / df(counter, counterDate)
func ForwardRate(fwd FxForward, provider market.RatesProvider) (currency.FxRate, error) {
	expanded, err := fwd.Expand()
	if err != nil {
		return currency.FxRate{}, err
	}
	base := expanded.BasePayment
	counter := expanded.CounterPayment

	dfBase, err := provider.DiscountFactor(base.Currency, base.Date)
	if err != nil {
		return currency.FxRate{}, err
	}
	dfCounter, err := provider.DiscountFactor(counter.Currency, counter.Date)
	if err != nil {
		return currency.FxRate{}, err
	}
	spot, err := provider.SpotRate(base.Currency, counter.Currency)
	if err != nil {
		return currency.FxRate{}, err
	}
	return currency.NewFxRate(base.Currency, counter.Currency, spot*dfBase/dfCounter)
}

// PresentValueSensitivity computes the sensitivity of the forward's present
// value to the underlying zero-rate curves, combining both legs additively
// into a finalized set. The composition is exact; sensitivities from many
// products sharing curve nodes sum correctly downstream.
func PresentValueSensitivity(fwd FxForward, provider market.RatesProvider) (market.PointSensitivities, error) {
	expanded, err := fwd.Expand()
	if err != nil {
		return market.PointSensitivities{}, err
	}
	sensBase, err := PresentValueSensitivityPayment(expanded.BasePayment, provider)
	if err != nil {
		return market.PointSensitivities{}, err
	}
	sensCounter, err := PresentValueSensitivityPayment(expanded.CounterPayment, provider)
	if err != nil {
		return market.PointSensitivities{}, err
	}
	return sensBase.CombinedWith(sensCounter).Build(), nil
}

// PresentValueSensitivityPayment computes the sensitivity of a single
// payment's present value to its currency's discount curve, by the chain
// rule: d(PV)/d(curve) = amount × d(df)/d(curve).
func PresentValueSensitivityPayment(p Payment, provider market.RatesProvider) (market.PointSensitivityBuilder, error) {
	dc, err := provider.DiscountCurve(p.Currency)
	if err != nil {
		return market.PointSensitivityBuilder{}, err
	}
	return dc.ZeroRatePointSensitivity(p.Date).MulBy(p.Amount), nil
}
