// Package marketdata holds serializable market snapshots and the stores that
// persist them. A snapshot carries everything needed to assemble a rates
// provider: valuation date, spot rates, and per-currency discount factor
// pillars.
package marketdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/curve"
	"github.com/meenmo/fxlib/market"
	"github.com/meenmo/fxlib/utils"
)

// Snapshot is a point-in-time market data set.
//
// SpotRates are keyed "BASE/COUNTER" (e.g. "USD/EUR"). Curves map a currency
// code to discount factor pillars keyed by YYYY-MM-DD date.
type Snapshot struct {
	ValuationDate time.Time                     `json:"valuationDate"`
	SpotRates     map[string]float64            `json:"spotRates"`
	Curves        map[string]map[string]float64 `json:"curves"`
}

// RatesProvider assembles an immutable provider from the snapshot. Curve time
// axes use ACT/365F and curves are named "<CCY>-DSC".
func (s *Snapshot) RatesProvider() (*market.ImmutableRatesProvider, error) {
	if s.ValuationDate.IsZero() {
		return nil, fmt.Errorf("snapshot: valuation date is required")
	}

	curves := make(map[currency.Currency]market.DiscountCurve, len(s.Curves))
	for code, pillars := range s.Curves {
		ccy, err := currency.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("snapshot: curve %q: %w", code, err)
		}
		dfs := make(map[time.Time]float64, len(pillars))
		for dateStr, df := range pillars {
			t, err := utils.ParseDate(dateStr)
			if err != nil {
				return nil, fmt.Errorf("snapshot: curve %s: %w", code, err)
			}
			dfs[t] = df
		}
		c, err := curve.NewFromDFs(code+"-DSC", ccy, s.ValuationDate, dfs, utils.Act365F)
		if err != nil {
			return nil, fmt.Errorf("snapshot: curve %s: %w", code, err)
		}
		curves[ccy] = c
	}

	rates := make([]currency.FxRate, 0, len(s.SpotRates))
	for pair, rate := range s.SpotRates {
		base, counter, err := splitPair(pair)
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
		r, err := currency.NewFxRate(base, counter, rate)
		if err != nil {
			return nil, fmt.Errorf("snapshot: spot %s: %w", pair, err)
		}
		rates = append(rates, r)
	}
	matrix, err := currency.NewFxMatrix(rates...)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	return market.NewImmutableRatesProvider(s.ValuationDate, curves, matrix)
}

func splitPair(pair string) (currency.Currency, currency.Currency, error) {
	parts := strings.Split(pair, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("spot rate key %q is not BASE/COUNTER", pair)
	}
	base, err := currency.Parse(parts[0])
	if err != nil {
		return "", "", fmt.Errorf("spot rate key %q: %w", pair, err)
	}
	counter, err := currency.Parse(parts[1])
	if err != nil {
		return "", "", fmt.Errorf("spot rate key %q: %w", pair, err)
	}
	return base, counter, nil
}
