// Command fxforward prices a two-currency FX forward from the command line.
//
// Market data comes either from a JSON snapshot file or from flat zero rates
// and a spot rate given as flags.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/curve"
	"github.com/meenmo/fxlib/fx"
	"github.com/meenmo/fxlib/market"
	"github.com/meenmo/fxlib/marketdata"
	"github.com/meenmo/fxlib/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fxforward", flag.ContinueOnError)
	fs.SetOutput(stderr)

	baseCode := fs.String("base", "USD", "Base leg currency")
	counterCode := fs.String("counter", "EUR", "Counter leg currency")
	notional := fs.Float64("notional", 1_000_000, "Base leg notional (positive = receive base)")
	fwdRate := fs.Float64("rate", 0, "Agreed forward rate, counter units per base unit (required)")
	valuationStr := fs.String("valuation-date", "", "Valuation date YYYY-MM-DD (required)")
	paymentStr := fs.String("payment-date", "", "Payment date YYYY-MM-DD (required)")
	snapshotPath := fs.String("snapshot", "", "JSON market snapshot path (overrides flat market flags)")
	spot := fs.Float64("spot", 0, "Spot rate base/counter (flat market mode)")
	baseZero := fs.Float64("base-zero", 0, "Flat zero rate for the base currency (flat market mode)")
	counterZero := fs.Float64("counter-zero", 0, "Flat zero rate for the counter currency (flat market mode)")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: fxforward [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Prices an FX forward: PV per currency, forward rate, par spread.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	base, err := currency.Parse(*baseCode)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: %v\n", err)
		return 2
	}
	counter, err := currency.Parse(*counterCode)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: %v\n", err)
		return 2
	}
	if *fwdRate <= 0 {
		fmt.Fprintln(stderr, "fxforward: -rate must be positive")
		return 2
	}
	if *paymentStr == "" {
		fmt.Fprintln(stderr, "fxforward: -payment-date is required")
		return 2
	}
	paymentDate, err := utils.ParseDate(*paymentStr)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: %v\n", err)
		return 2
	}

	provider, err := buildProvider(*snapshotPath, *valuationStr, base, counter, *spot, *baseZero, *counterZero)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: %v\n", err)
		return 2
	}

	rate, err := currency.NewFxRate(base, counter, *fwdRate)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: %v\n", err)
		return 2
	}
	fwd, err := fx.ForwardFromRate(currency.NewAmount(base, *notional), rate, paymentDate)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: %v\n", err)
		return 2
	}

	pv, err := fx.PresentValue(fwd, provider)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: present value: %v\n", err)
		return 1
	}
	forwardRate, err := fx.ForwardRate(fwd, provider)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: forward rate: %v\n", err)
		return 1
	}
	parSpread, err := fx.ParSpread(fwd, provider)
	if err != nil {
		fmt.Fprintf(stderr, "fxforward: par spread: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Valuation date: %s\n", provider.ValuationDate().Format("2006-01-02"))
	fmt.Fprintf(stdout, "Payment date:   %s\n", paymentDate.Format("2006-01-02"))
	if pv.Empty() {
		fmt.Fprintln(stdout, "Present value:  (settled)")
	} else {
		for _, e := range pv.Amounts() {
			fmt.Fprintf(stdout, "Present value:  %s\n", e)
		}
	}
	fmt.Fprintf(stdout, "Forward rate:   %.10f (%s/%s)\n", forwardRate.Rate, forwardRate.Base, forwardRate.Counter)
	fmt.Fprintf(stdout, "Par spread:     %.10f (%v bp)\n", parSpread, utils.RoundTo(parSpread*1e4, 4))
	return 0
}

func buildProvider(snapshotPath, valuationStr string, base, counter currency.Currency, spot, baseZero, counterZero float64) (market.RatesProvider, error) {
	if snapshotPath != "" {
		raw, err := os.ReadFile(snapshotPath)
		if err != nil {
			return nil, fmt.Errorf("read snapshot: %w", err)
		}
		var s marketdata.Snapshot
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("parse snapshot: %w", err)
		}
		return s.RatesProvider()
	}

	if strings.TrimSpace(valuationStr) == "" {
		return nil, fmt.Errorf("-valuation-date is required without a snapshot")
	}
	valuation, err := utils.ParseDate(valuationStr)
	if err != nil {
		return nil, err
	}
	if spot <= 0 {
		return nil, fmt.Errorf("-spot must be positive without a snapshot")
	}

	baseCurve, err := curve.NewFlat(string(base)+"-DSC", base, valuation, baseZero, utils.Act365F)
	if err != nil {
		return nil, err
	}
	counterCurve, err := curve.NewFlat(string(counter)+"-DSC", counter, valuation, counterZero, utils.Act365F)
	if err != nil {
		return nil, err
	}
	spotRate, err := currency.NewFxRate(base, counter, spot)
	if err != nil {
		return nil, err
	}
	matrix, err := currency.NewFxMatrix(spotRate)
	if err != nil {
		return nil, err
	}
	return market.NewImmutableRatesProvider(valuation, map[currency.Currency]market.DiscountCurve{
		base:    baseCurve,
		counter: counterCurve,
	}, matrix)
}
