package market_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/market"
)

func point(curveName string, ccy currency.Currency, date time.Time, value float64) market.PointSensitivity {
	return market.PointSensitivity{
		CurveName:     curveName,
		CurveCurrency: ccy,
		Date:          date,
		Currency:      ccy,
		Value:         value,
	}
}

func TestBuilderMulBy(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	b := market.NewPointSensitivityBuilder(point("USD-DSC", currency.USD, date, -0.4))

	scaled := b.MulBy(1_000_000)
	got := scaled.Build().Sensitivities()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if math.Abs(got[0].Value-(-400_000)) > 1e-6 {
		t.Fatalf("scaled value mismatch: got %v", got[0].Value)
	}

	// The original builder is untouched.
	orig := b.Build().Sensitivities()
	if math.Abs(orig[0].Value-(-0.4)) > 1e-12 {
		t.Fatalf("builder mutated: got %v", orig[0].Value)
	}
}

func TestBuildSumsDuplicateKeys(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	b1 := market.NewPointSensitivityBuilder(point("USD-DSC", currency.USD, date, 1.5))
	b2 := market.NewPointSensitivityBuilder(
		point("USD-DSC", currency.USD, date, 2.5),
		point("EUR-DSC", currency.EUR, date, -1.0),
	)

	ps := b1.CombinedWith(b2).Build()
	if ps.Size() != 2 {
		t.Fatalf("expected 2 entries, got %d", ps.Size())
	}
	entries := ps.Sensitivities()
	// Canonical order sorts EUR-DSC before USD-DSC.
	if entries[0].CurveName != "EUR-DSC" || entries[1].CurveName != "USD-DSC" {
		t.Fatalf("order mismatch: %v / %v", entries[0].CurveName, entries[1].CurveName)
	}
	if math.Abs(entries[1].Value-4.0) > 1e-12 {
		t.Fatalf("merged value mismatch: got %v", entries[1].Value)
	}
}

func TestBuildOrderIrrelevant(t *testing.T) {
	t.Parallel()

	d1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := point("USD-DSC", currency.USD, d1, 1)
	b := point("USD-DSC", currency.USD, d2, 2)

	ps1 := market.NewPointSensitivityBuilder(a, b).Build()
	ps2 := market.NewPointSensitivityBuilder(b, a).Build()
	if !ps1.Equal(ps2, 0) {
		t.Fatalf("sets built in different order should be equal")
	}
}

func TestCombineAndMultipliedBy(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ps := market.NewPointSensitivityBuilder(point("USD-DSC", currency.USD, date, 3)).Build()

	tripled := ps.Combine(ps).Combine(ps)
	if !tripled.Equal(ps.MultipliedBy(3), 1e-12) {
		t.Fatalf("combine and scale disagree")
	}
}

func TestEqualDetectsDifferences(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := market.NewPointSensitivityBuilder(point("USD-DSC", currency.USD, date, 1)).Build()
	b := market.NewPointSensitivityBuilder(point("USD-DSC", currency.USD, date, 1.1)).Build()
	c := market.NewPointSensitivityBuilder(point("EUR-DSC", currency.EUR, date, 1)).Build()

	if a.Equal(b, 1e-3) {
		t.Fatalf("values beyond tolerance should not be equal")
	}
	if !a.Equal(b, 0.2) {
		t.Fatalf("values within tolerance should be equal")
	}
	if a.Equal(c, 1) {
		t.Fatalf("different keys should not be equal")
	}
}
