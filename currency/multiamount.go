package currency

import (
	"sort"
	"strings"
)

// MultiCurrencyAmount holds at most one signed amount per currency.
//
// The zero value is the empty amount. All operations return new values; the
// internal map is never shared with callers.
type MultiCurrencyAmount struct {
	amounts map[Currency]float64
}

// NewMultiCurrencyAmount builds an amount from the given entries, merging
// same-currency entries additively.
func NewMultiCurrencyAmount(entries ...CurrencyAmount) MultiCurrencyAmount {
	m := make(map[Currency]float64, len(entries))
	for _, e := range entries {
		m[e.Currency] += e.Amount
	}
	return MultiCurrencyAmount{amounts: m}
}

// Empty reports whether the amount holds no entries.
func (m MultiCurrencyAmount) Empty() bool {
	return len(m.amounts) == 0
}

// Size returns the number of currency entries.
func (m MultiCurrencyAmount) Size() int {
	return len(m.amounts)
}

// Amount returns the entry for the given currency, if present.
func (m MultiCurrencyAmount) Amount(ccy Currency) (CurrencyAmount, bool) {
	v, ok := m.amounts[ccy]
	if !ok {
		return CurrencyAmount{}, false
	}
	return CurrencyAmount{Currency: ccy, Amount: v}, true
}

// Amounts returns all entries sorted by currency code.
func (m MultiCurrencyAmount) Amounts() []CurrencyAmount {
	out := make([]CurrencyAmount, 0, len(m.amounts))
	for ccy, v := range m.amounts {
		out = append(out, CurrencyAmount{Currency: ccy, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Currency < out[j].Currency
	})
	return out
}

// Plus merges another multi-currency amount additively.
func (m MultiCurrencyAmount) Plus(other MultiCurrencyAmount) MultiCurrencyAmount {
	merged := make(map[Currency]float64, len(m.amounts)+len(other.amounts))
	for ccy, v := range m.amounts {
		merged[ccy] += v
	}
	for ccy, v := range other.amounts {
		merged[ccy] += v
	}
	return MultiCurrencyAmount{amounts: merged}
}

// PlusAmount merges a single-currency amount additively.
func (m MultiCurrencyAmount) PlusAmount(a CurrencyAmount) MultiCurrencyAmount {
	merged := make(map[Currency]float64, len(m.amounts)+1)
	for ccy, v := range m.amounts {
		merged[ccy] += v
	}
	merged[a.Currency] += a.Amount
	return MultiCurrencyAmount{amounts: merged}
}

// MultipliedBy scales every entry by a scalar.
func (m MultiCurrencyAmount) MultipliedBy(k float64) MultiCurrencyAmount {
	scaled := make(map[Currency]float64, len(m.amounts))
	for ccy, v := range m.amounts {
		scaled[ccy] = v * k
	}
	return MultiCurrencyAmount{amounts: scaled}
}

// String renders entries sorted by currency code, e.g.
// "EUR -873000.00, USD 980000.00".
func (m MultiCurrencyAmount) String() string {
	entries := m.Amounts()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
