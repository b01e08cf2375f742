// Package currency provides the monetary value types used across the library:
// single and multi currency amounts, FX rates, and a spot rate matrix.
//
// Amounts carry float64 values because they feed straight into curve math;
// exact decimal arithmetic is used only at the display boundary.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// ErrCurrencyMismatch is returned when an operation relates two currencies it
// cannot reconcile (unknown pair, amount arithmetic across currencies).
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Currency is an ISO-4217 currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	GBP Currency = "GBP"
	KRW Currency = "KRW"
)

// Parse validates a currency code against the ISO registry.
func Parse(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return Currency(code), nil
}

// String returns the ISO code.
func (c Currency) String() string {
	return string(c)
}

// MinorUnits returns the number of fraction digits for display rounding.
// Unregistered codes default to 2.
func (c Currency) MinorUnits() int {
	cur := money.GetCurrency(string(c))
	if cur == nil {
		return 2
	}
	return cur.Fraction
}
