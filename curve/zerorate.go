// Package curve implements zero-rate discount curves built from discount
// factor pillars or a flat rate.
package curve

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/market"
	"github.com/meenmo/fxlib/utils"
)

// ZeroRateCurve is a single-currency discount curve anchored at a valuation
// date. It is immutable after construction.
//
// Pillar curves interpolate log-linearly in discount factor space between
// pillars and extrapolate through the nearest bracket beyond them, so dates
// before the valuation date resolve to factors above one. Flat curves apply
// df = exp(-z * t) everywhere.
type ZeroRateCurve struct {
	name          string
	ccy           currency.Currency
	valuationDate time.Time
	dayCount      utils.DayCount

	pillarDates []time.Time
	dfs         map[time.Time]float64

	flat   float64
	isFlat bool
}

// NewFromDFs builds a curve from discount factor pillars. A pillar at the
// valuation date with df = 1 is inserted when not supplied. The curve time
// axis uses the given day count; ACT/365F is the standard choice.
func NewFromDFs(name string, ccy currency.Currency, valuationDate time.Time, dfs map[time.Time]float64, dayCount utils.DayCount) (*ZeroRateCurve, error) {
	if name == "" {
		return nil, fmt.Errorf("NewFromDFs: curve name is required")
	}
	if valuationDate.IsZero() {
		return nil, fmt.Errorf("NewFromDFs: valuation date is required")
	}
	if len(dfs) == 0 {
		return nil, fmt.Errorf("NewFromDFs: at least one discount factor pillar is required")
	}

	copied := make(map[time.Time]float64, len(dfs)+1)
	for t, df := range dfs {
		if df <= 0 {
			return nil, fmt.Errorf("NewFromDFs: non-positive discount factor %v at %s", df, t.Format("2006-01-02"))
		}
		copied[t] = df
	}
	if _, ok := copied[valuationDate]; !ok {
		copied[valuationDate] = 1.0
	}

	dates := make([]time.Time, 0, len(copied))
	for t := range copied {
		dates = append(dates, t)
	}
	utils.SortDates(dates)

	return &ZeroRateCurve{
		name:          name,
		ccy:           ccy,
		valuationDate: valuationDate,
		dayCount:      dayCount,
		pillarDates:   dates,
		dfs:           copied,
	}, nil
}

// NewFlat builds a curve with a single continuously compounded zero rate.
func NewFlat(name string, ccy currency.Currency, valuationDate time.Time, zeroRate float64, dayCount utils.DayCount) (*ZeroRateCurve, error) {
	if name == "" {
		return nil, fmt.Errorf("NewFlat: curve name is required")
	}
	if valuationDate.IsZero() {
		return nil, fmt.Errorf("NewFlat: valuation date is required")
	}
	return &ZeroRateCurve{
		name:          name,
		ccy:           ccy,
		valuationDate: valuationDate,
		dayCount:      dayCount,
		flat:          zeroRate,
		isFlat:        true,
	}, nil
}

// Name returns the curve identifier.
func (c *ZeroRateCurve) Name() string {
	return c.name
}

// Currency returns the curve's currency.
func (c *ZeroRateCurve) Currency() currency.Currency {
	return c.ccy
}

// ValuationDate returns the date the curve is anchored to.
func (c *ZeroRateCurve) ValuationDate() time.Time {
	return c.valuationDate
}

// RelativeTime returns the curve time from the valuation date to t.
func (c *ZeroRateCurve) RelativeTime(t time.Time) float64 {
	return utils.YearFraction(c.valuationDate, t, c.dayCount)
}

// DF returns the discount factor at t.
func (c *ZeroRateCurve) DF(t time.Time) float64 {
	if c.isFlat {
		return math.Exp(-c.flat * c.RelativeTime(t))
	}
	if df, ok := c.dfs[t]; ok {
		return df
	}
	if len(c.pillarDates) < 2 {
		return c.dfs[c.pillarDates[0]]
	}

	d1, d2 := utils.AdjacentDates(t, c.pillarDates)
	df1 := c.dfs[d1]
	df2 := c.dfs[d2]

	t1 := c.RelativeTime(d1)
	t2 := c.RelativeTime(d2)
	tTarget := c.RelativeTime(t)

	if t2 == t1 {
		return df1
	}
	forwardRate := math.Log(df1/df2) / (t2 - t1)
	return df1 * math.Exp(-forwardRate*(tTarget-t1))
}

// ZeroRate returns the continuously compounded zero rate at t as a decimal
// (e.g., 0.025 == 2.5%). At the valuation date it returns zero.
func (c *ZeroRateCurve) ZeroRate(t time.Time) float64 {
	if c.isFlat {
		return c.flat
	}
	yearFrac := c.RelativeTime(t)
	if yearFrac == 0 {
		return 0
	}
	return -math.Log(c.DF(t)) / yearFrac
}

// ZeroRatePointSensitivity returns the derivative of the discount factor at t
// with respect to the curve's zero rate, d(df)/d(z) = -t * df(t), keyed by
// this curve's name, currency, and the date.
func (c *ZeroRateCurve) ZeroRatePointSensitivity(t time.Time) market.PointSensitivityBuilder {
	yearFrac := c.RelativeTime(t)
	return market.NewPointSensitivityBuilder(market.PointSensitivity{
		CurveName:     c.name,
		CurveCurrency: c.ccy,
		Date:          t,
		Currency:      c.ccy,
		Value:         -yearFrac * c.DF(t),
	})
}

// PillarDates returns the curve's pillar dates in ascending order.
func (c *ZeroRateCurve) PillarDates() []time.Time {
	out := make([]time.Time, len(c.pillarDates))
	copy(out, c.pillarDates)
	return out
}
