package currency

import (
	"fmt"
)

// FxRate is an exchange rate between two currencies: one unit of the base
// currency buys Rate units of the counter currency.
type FxRate struct {
	Base    Currency
	Counter Currency
	Rate    float64
}

// NewFxRate constructs a rate. The two currencies must differ and the rate
// must be strictly positive.
func NewFxRate(base, counter Currency, rate float64) (FxRate, error) {
	if base == counter {
		return FxRate{}, fmt.Errorf("%w: fx rate needs two distinct currencies, got %s/%s", ErrCurrencyMismatch, base, counter)
	}
	if rate <= 0 {
		return FxRate{}, fmt.Errorf("fx rate %s/%s must be positive, got %v", base, counter, rate)
	}
	return FxRate{Base: base, Counter: counter, Rate: rate}, nil
}

// Inverse returns the rate quoted the other way around.
func (r FxRate) Inverse() FxRate {
	return FxRate{Base: r.Counter, Counter: r.Base, Rate: 1 / r.Rate}
}

// ConversionRate returns the conversion factor from one unit of from into to.
// Either orientation of the quoted pair is accepted.
func (r FxRate) ConversionRate(from, to Currency) (float64, error) {
	switch {
	case from == r.Base && to == r.Counter:
		return r.Rate, nil
	case from == r.Counter && to == r.Base:
		return 1 / r.Rate, nil
	default:
		return 0, fmt.Errorf("%w: rate %s/%s cannot convert %s to %s", ErrCurrencyMismatch, r.Base, r.Counter, from, to)
	}
}

// String renders the rate as "USD/EUR 0.9".
func (r FxRate) String() string {
	return fmt.Sprintf("%s/%s %v", r.Base, r.Counter, r.Rate)
}
