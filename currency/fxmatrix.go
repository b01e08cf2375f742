package currency

import (
	"fmt"
)

// Pair is an ordered currency pair.
type Pair struct {
	Base    Currency
	Counter Currency
}

// Reversed returns the pair quoted the other way around.
func (p Pair) Reversed() Pair {
	return Pair{Base: p.Counter, Counter: p.Base}
}

// String renders the pair as "USD/EUR".
func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", p.Base, p.Counter)
}

// FxMatrix is an immutable set of spot rates. Lookups resolve the identity
// rate, a directly quoted pair, or the inverse of a quoted pair.
type FxMatrix struct {
	rates map[Pair]float64
}

// NewFxMatrix builds a matrix from the given rates.
func NewFxMatrix(rates ...FxRate) (FxMatrix, error) {
	m := make(map[Pair]float64, len(rates))
	for _, r := range rates {
		if r.Base == r.Counter {
			return FxMatrix{}, fmt.Errorf("%w: fx matrix rate %s/%s", ErrCurrencyMismatch, r.Base, r.Counter)
		}
		if r.Rate <= 0 {
			return FxMatrix{}, fmt.Errorf("fx matrix rate %s must be positive, got %v", Pair{Base: r.Base, Counter: r.Counter}, r.Rate)
		}
		m[Pair{Base: r.Base, Counter: r.Counter}] = r.Rate
	}
	return FxMatrix{rates: m}, nil
}

// Rate returns the conversion factor from one unit of base into counter.
func (m FxMatrix) Rate(base, counter Currency) (float64, error) {
	if base == counter {
		return 1, nil
	}
	if r, ok := m.rates[Pair{Base: base, Counter: counter}]; ok {
		return r, nil
	}
	if r, ok := m.rates[Pair{Base: counter, Counter: base}]; ok {
		return 1 / r, nil
	}
	return 0, fmt.Errorf("%w: no spot rate for %s/%s", ErrCurrencyMismatch, base, counter)
}

// Convert converts a single-currency amount into the target currency.
func (m FxMatrix) Convert(a CurrencyAmount, target Currency) (CurrencyAmount, error) {
	r, err := m.Rate(a.Currency, target)
	if err != nil {
		return CurrencyAmount{}, err
	}
	return CurrencyAmount{Currency: target, Amount: a.Amount * r}, nil
}
