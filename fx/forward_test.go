package fx_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/fx"
)

func TestNewForwardRequiresDistinctCurrencies(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := fx.NewForward(
		currency.NewAmount(currency.USD, 1_000_000),
		currency.NewAmount(currency.USD, -1_000_000),
		date,
	)
	if !errors.Is(err, fx.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}

	_, err = fx.NewForward(
		currency.NewAmount(currency.USD, 1_000_000),
		currency.NewAmount(currency.EUR, -900_000),
		time.Time{},
	)
	if !errors.Is(err, fx.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct for zero date, got %v", err)
	}
}

func TestForwardFromRate(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rate, err := currency.NewFxRate(currency.USD, currency.EUR, 0.9)
	if err != nil {
		t.Fatalf("NewFxRate error: %v", err)
	}

	fwd, err := fx.ForwardFromRate(currency.NewAmount(currency.USD, 1_000_000), rate, date)
	if err != nil {
		t.Fatalf("ForwardFromRate error: %v", err)
	}
	counter := fwd.CounterAmount()
	if counter.Currency != currency.EUR {
		t.Fatalf("counter currency mismatch: got %s", counter.Currency)
	}
	if math.Abs(counter.Amount-(-900_000)) > 1e-6 {
		t.Fatalf("counter amount mismatch: got %v", counter.Amount)
	}

	// Base leg quoted on the counter side of the rate.
	fwd2, err := fx.ForwardFromRate(currency.NewAmount(currency.EUR, 900_000), rate, date)
	if err != nil {
		t.Fatalf("ForwardFromRate error: %v", err)
	}
	if math.Abs(fwd2.CounterAmount().Amount-(-1_000_000)) > 1e-6 {
		t.Fatalf("counter amount mismatch: got %v", fwd2.CounterAmount().Amount)
	}

	// Rate must quote the base currency.
	if _, err := fx.ForwardFromRate(currency.NewAmount(currency.JPY, 1), rate, date); !errors.Is(err, fx.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fwd, err := fx.NewForward(
		currency.NewAmount(currency.USD, 1_000_000),
		currency.NewAmount(currency.EUR, -900_000),
		date,
	)
	if err != nil {
		t.Fatalf("NewForward error: %v", err)
	}

	expanded, err := fwd.Expand()
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}
	if expanded.BasePayment.Currency != currency.USD || expanded.BasePayment.Amount != 1_000_000 {
		t.Fatalf("base payment mismatch: %+v", expanded.BasePayment)
	}
	if expanded.CounterPayment.Currency != currency.EUR || expanded.CounterPayment.Amount != -900_000 {
		t.Fatalf("counter payment mismatch: %+v", expanded.CounterPayment)
	}
	if !expanded.PaymentDate().Equal(date) {
		t.Fatalf("payment date mismatch: %s", expanded.PaymentDate().Format("2006-01-02"))
	}
	if !expanded.BasePayment.Date.Equal(expanded.CounterPayment.Date) {
		t.Fatalf("legs must settle on the same date")
	}
}
