package currency_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/fxlib/currency"
)

func TestParse(t *testing.T) {
	t.Parallel()

	ccy, err := currency.Parse("usd")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if ccy != currency.USD {
		t.Fatalf("Parse mismatch: got %s", ccy)
	}

	if _, err := currency.Parse("XXXX"); err == nil {
		t.Fatalf("expected error for unknown code")
	}
}

func TestCurrencyAmountArithmetic(t *testing.T) {
	t.Parallel()

	a := currency.NewAmount(currency.USD, 100)
	b := currency.NewAmount(currency.USD, -40)

	sum, err := a.Plus(b)
	if err != nil {
		t.Fatalf("Plus error: %v", err)
	}
	if math.Abs(sum.Amount-60) > 1e-12 {
		t.Fatalf("Plus mismatch: got %v", sum.Amount)
	}

	scaled := a.MultipliedBy(2.5)
	if math.Abs(scaled.Amount-250) > 1e-12 {
		t.Fatalf("MultipliedBy mismatch: got %v", scaled.Amount)
	}

	if a.Negated().Amount != -100 {
		t.Fatalf("Negated mismatch: got %v", a.Negated().Amount)
	}

	eur := currency.NewAmount(currency.EUR, 1)
	if _, err := a.Plus(eur); !errors.Is(err, currency.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestCurrencyAmountConvertedTo(t *testing.T) {
	t.Parallel()

	rate, err := currency.NewFxRate(currency.USD, currency.EUR, 0.9)
	if err != nil {
		t.Fatalf("NewFxRate error: %v", err)
	}

	usd := currency.NewAmount(currency.USD, 100)
	eur, err := usd.ConvertedTo(currency.EUR, rate)
	if err != nil {
		t.Fatalf("ConvertedTo error: %v", err)
	}
	if math.Abs(eur.Amount-90) > 1e-12 {
		t.Fatalf("converted amount mismatch: got %v", eur.Amount)
	}

	// Inverse orientation of the same quote.
	back, err := eur.ConvertedTo(currency.USD, rate)
	if err != nil {
		t.Fatalf("ConvertedTo error: %v", err)
	}
	if math.Abs(back.Amount-100) > 1e-9 {
		t.Fatalf("round trip mismatch: got %v", back.Amount)
	}

	// Identity conversion needs no rate lookup.
	same, err := usd.ConvertedTo(currency.USD, rate)
	if err != nil {
		t.Fatalf("ConvertedTo error: %v", err)
	}
	if same != usd {
		t.Fatalf("identity conversion changed the amount: %v", same)
	}

	jpy := currency.NewAmount(currency.JPY, 1)
	if _, err := jpy.ConvertedTo(currency.EUR, rate); !errors.Is(err, currency.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}
}

func TestCurrencyAmountString(t *testing.T) {
	t.Parallel()

	if got := currency.NewAmount(currency.USD, 980000).String(); got != "USD 980000.00" {
		t.Fatalf("String mismatch: got %q", got)
	}
	// JPY has no minor units.
	if got := currency.NewAmount(currency.JPY, 1234.4).String(); got != "JPY 1234" {
		t.Fatalf("String mismatch: got %q", got)
	}
}
