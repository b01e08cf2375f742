package utils_test

import (
	"math"
	"testing"
	"time"

	"github.com/meenmo/fxlib/utils"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestAdjacentDates(t *testing.T) {
	t.Parallel()

	dates := []time.Time{d(2024, 1, 1), d(2024, 6, 1), d(2025, 1, 1)}

	lo, hi := utils.AdjacentDates(d(2024, 3, 15), dates)
	if !lo.Equal(d(2024, 1, 1)) || !hi.Equal(d(2024, 6, 1)) {
		t.Fatalf("bracket mismatch: %s / %s", lo.Format("2006-01-02"), hi.Format("2006-01-02"))
	}

	// Targets beyond the range resolve to the boundary pair.
	lo, hi = utils.AdjacentDates(d(2023, 1, 1), dates)
	if !lo.Equal(d(2024, 1, 1)) || !hi.Equal(d(2024, 6, 1)) {
		t.Fatalf("lower boundary mismatch: %s / %s", lo.Format("2006-01-02"), hi.Format("2006-01-02"))
	}
	lo, hi = utils.AdjacentDates(d(2026, 1, 1), dates)
	if !lo.Equal(d(2024, 6, 1)) || !hi.Equal(d(2025, 1, 1)) {
		t.Fatalf("upper boundary mismatch: %s / %s", lo.Format("2006-01-02"), hi.Format("2006-01-02"))
	}
}

func TestAddMonthEOM(t *testing.T) {
	t.Parallel()

	// Jan 31 + 1M lands on Feb 29 in a leap year, not Mar 2.
	if got := utils.AddMonth(d(2024, 1, 31), 1); !got.Equal(d(2024, 2, 29)) {
		t.Fatalf("AddMonth mismatch: got %s", got.Format("2006-01-02"))
	}
	if got := utils.AddMonth(d(2024, 3, 15), 3); !got.Equal(d(2024, 6, 15)) {
		t.Fatalf("AddMonth mismatch: got %s", got.Format("2006-01-02"))
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := utils.ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	if !got.Equal(d(2024, 6, 1)) {
		t.Fatalf("ParseDate mismatch: got %s", got)
	}
	if _, err := utils.ParseDate("06/01/2024"); err == nil {
		t.Fatalf("expected error for bad layout")
	}
}

func TestRoundTo(t *testing.T) {
	t.Parallel()

	if got := utils.RoundTo(92.78350515, 4); math.Abs(got-92.7835) > 1e-12 {
		t.Fatalf("RoundTo mismatch: got %v", got)
	}
	if got := utils.RoundTo(-2.71828, 2); math.Abs(got-(-2.72)) > 1e-12 {
		t.Fatalf("RoundTo negative mismatch: got %v", got)
	}
	if got := utils.RoundTo(3.14159, 0); got != 3 {
		t.Fatalf("RoundTo zero decimals mismatch: got %v", got)
	}
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	start := d(2024, 1, 1)
	end := d(2024, 6, 1)

	if got := utils.YearFraction(start, end, utils.Act365F); math.Abs(got-152.0/365.0) > 1e-12 {
		t.Fatalf("ACT/365F mismatch: got %.12f", got)
	}
	if got := utils.YearFraction(start, end, utils.Act360); math.Abs(got-152.0/360.0) > 1e-12 {
		t.Fatalf("ACT/360 mismatch: got %.12f", got)
	}
	// 30/360: 5 whole months.
	if got := utils.YearFraction(start, end, utils.Thirty360); math.Abs(got-150.0/360.0) > 1e-12 {
		t.Fatalf("30/360 mismatch: got %.12f", got)
	}
}
