package market

import (
	"math"
	"sort"
	"time"

	"github.com/meenmo/fxlib/currency"
)

// PointSensitivity is the derivative of a value with respect to a single
// curve parameter, keyed by curve name, curve currency, and date. The
// Currency field is the currency of the sensitivity value itself, which can
// differ from the curve currency after conversion.
type PointSensitivity struct {
	CurveName     string
	CurveCurrency currency.Currency
	Date          time.Time
	Currency      currency.Currency
	Value         float64
}

func (s PointSensitivity) sameKey(o PointSensitivity) bool {
	return s.CurveName == o.CurveName &&
		s.CurveCurrency == o.CurveCurrency &&
		s.Currency == o.Currency &&
		s.Date.Equal(o.Date)
}

func (s PointSensitivity) keyLess(o PointSensitivity) bool {
	if s.CurveName != o.CurveName {
		return s.CurveName < o.CurveName
	}
	if s.CurveCurrency != o.CurveCurrency {
		return s.CurveCurrency < o.CurveCurrency
	}
	if s.Currency != o.Currency {
		return s.Currency < o.Currency
	}
	return s.Date.Before(o.Date)
}

// PointSensitivityBuilder accumulates point sensitivities before they are
// finalized. It has value semantics: MulBy and CombinedWith return new
// builders and never mutate shared state, so two legs can be built
// independently and merged.
type PointSensitivityBuilder struct {
	sensitivities []PointSensitivity
}

// NewPointSensitivityBuilder starts a builder from the given points.
func NewPointSensitivityBuilder(points ...PointSensitivity) PointSensitivityBuilder {
	copied := make([]PointSensitivity, len(points))
	copy(copied, points)
	return PointSensitivityBuilder{sensitivities: copied}
}

// MulBy scales every accumulated sensitivity by a scalar.
func (b PointSensitivityBuilder) MulBy(factor float64) PointSensitivityBuilder {
	scaled := make([]PointSensitivity, len(b.sensitivities))
	for i, s := range b.sensitivities {
		s.Value *= factor
		scaled[i] = s
	}
	return PointSensitivityBuilder{sensitivities: scaled}
}

// CombinedWith merges another builder additively.
func (b PointSensitivityBuilder) CombinedWith(other PointSensitivityBuilder) PointSensitivityBuilder {
	merged := make([]PointSensitivity, 0, len(b.sensitivities)+len(other.sensitivities))
	merged = append(merged, b.sensitivities...)
	merged = append(merged, other.sensitivities...)
	return PointSensitivityBuilder{sensitivities: merged}
}

// Build finalizes into an immutable normalized set: entries sorted by key,
// duplicate keys summed.
func (b PointSensitivityBuilder) Build() PointSensitivities {
	sorted := make([]PointSensitivity, len(b.sensitivities))
	copy(sorted, b.sensitivities)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].keyLess(sorted[j])
	})

	normalized := make([]PointSensitivity, 0, len(sorted))
	for _, s := range sorted {
		if n := len(normalized); n > 0 && normalized[n-1].sameKey(s) {
			normalized[n-1].Value += s.Value
			continue
		}
		normalized = append(normalized, s)
	}
	return PointSensitivities{sensitivities: normalized}
}

// PointSensitivities is an immutable, normalized set of point sensitivities.
// Keys are unique and ordering is canonical, so two sets computed along
// different paths compare equal when they represent the same derivative.
type PointSensitivities struct {
	sensitivities []PointSensitivity
}

// Sensitivities returns the normalized entries.
func (ps PointSensitivities) Sensitivities() []PointSensitivity {
	out := make([]PointSensitivity, len(ps.sensitivities))
	copy(out, ps.sensitivities)
	return out
}

// Size returns the number of entries.
func (ps PointSensitivities) Size() int {
	return len(ps.sensitivities)
}

// Combine merges two finalized sets additively.
func (ps PointSensitivities) Combine(other PointSensitivities) PointSensitivities {
	b := PointSensitivityBuilder{sensitivities: ps.sensitivities}
	return b.CombinedWith(PointSensitivityBuilder{sensitivities: other.sensitivities}).Build()
}

// MultipliedBy scales every entry by a scalar.
func (ps PointSensitivities) MultipliedBy(factor float64) PointSensitivities {
	return PointSensitivityBuilder{sensitivities: ps.sensitivities}.MulBy(factor).Build()
}

// Equal reports whether two sets have the same keys and values within tol.
func (ps PointSensitivities) Equal(other PointSensitivities, tol float64) bool {
	if len(ps.sensitivities) != len(other.sensitivities) {
		return false
	}
	for i, s := range ps.sensitivities {
		o := other.sensitivities[i]
		if !s.sameKey(o) {
			return false
		}
		if math.Abs(s.Value-o.Value) > tol {
			return false
		}
	}
	return true
}
