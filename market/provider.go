// Package market defines the market data surface consumed by the pricers:
// the rates provider, the discount curve contract, and point sensitivities.
package market

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/fxlib/currency"
)

// ErrMissingData is returned when the provider cannot supply a requested
// discount factor, curve, or spot rate. The provider does not retry.
var ErrMissingData = errors.New("missing market data")

// DiscountCurve provides discount factors, zero rates, and the analytic
// sensitivity of the discount factor to the zero rate.
type DiscountCurve interface {
	DF(t time.Time) float64
	ZeroRate(t time.Time) float64
	ZeroRatePointSensitivity(t time.Time) PointSensitivityBuilder
}

// RatesProvider supplies all market data needed to price an instrument.
//
// Implementations must be safe for concurrent use: every method is a pure
// lookup against immutable state or state owned by the caller.
type RatesProvider interface {
	ValuationDate() time.Time
	DiscountFactor(ccy currency.Currency, date time.Time) (float64, error)
	DiscountCurve(ccy currency.Currency) (DiscountCurve, error)
	SpotRate(base, counter currency.Currency) (float64, error)
	Convert(amount currency.MultiCurrencyAmount, target currency.Currency) (currency.CurrencyAmount, error)
}

// ImmutableRatesProvider is a RatesProvider backed by a fixed valuation date,
// one discount curve per currency, and a spot rate matrix.
type ImmutableRatesProvider struct {
	valuationDate time.Time
	curves        map[currency.Currency]DiscountCurve
	fxMatrix      currency.FxMatrix
}

// NewImmutableRatesProvider bundles curves and spot rates as of a valuation date.
func NewImmutableRatesProvider(valuationDate time.Time, curves map[currency.Currency]DiscountCurve, fxMatrix currency.FxMatrix) (*ImmutableRatesProvider, error) {
	if valuationDate.IsZero() {
		return nil, fmt.Errorf("NewImmutableRatesProvider: valuation date is required")
	}
	copied := make(map[currency.Currency]DiscountCurve, len(curves))
	for ccy, c := range curves {
		if c == nil {
			return nil, fmt.Errorf("NewImmutableRatesProvider: nil curve for %s", ccy)
		}
		copied[ccy] = c
	}
	return &ImmutableRatesProvider{
		valuationDate: valuationDate,
		curves:        copied,
		fxMatrix:      fxMatrix,
	}, nil
}

// ValuationDate returns the date all curves are anchored to.
func (p *ImmutableRatesProvider) ValuationDate() time.Time {
	return p.valuationDate
}

// DiscountCurve returns the discount curve for the given currency.
func (p *ImmutableRatesProvider) DiscountCurve(ccy currency.Currency) (DiscountCurve, error) {
	c, ok := p.curves[ccy]
	if !ok {
		return nil, fmt.Errorf("%w: no discount curve for %s", ErrMissingData, ccy)
	}
	return c, nil
}

// DiscountFactor returns the discount factor for the currency at the date.
func (p *ImmutableRatesProvider) DiscountFactor(ccy currency.Currency, date time.Time) (float64, error) {
	c, err := p.DiscountCurve(ccy)
	if err != nil {
		return 0, err
	}
	return c.DF(date), nil
}

// SpotRate returns the current spot rate converting one unit of base into counter.
func (p *ImmutableRatesProvider) SpotRate(base, counter currency.Currency) (float64, error) {
	r, err := p.fxMatrix.Rate(base, counter)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMissingData, err)
	}
	return r, nil
}

// Convert sums a multi-currency amount into the target currency at spot.
func (p *ImmutableRatesProvider) Convert(amount currency.MultiCurrencyAmount, target currency.Currency) (currency.CurrencyAmount, error) {
	total := currency.NewAmount(target, 0)
	for _, entry := range amount.Amounts() {
		converted, err := p.fxMatrix.Convert(entry, target)
		if err != nil {
			return currency.CurrencyAmount{}, err
		}
		total, err = total.Plus(converted)
		if err != nil {
			return currency.CurrencyAmount{}, err
		}
	}
	return total, nil
}
