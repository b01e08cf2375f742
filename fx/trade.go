package fx

import (
	"fmt"
	"time"

	"github.com/meenmo/fxlib/calendar"
	"github.com/meenmo/fxlib/currency"
	"github.com/meenmo/fxlib/utils"
)

// ForwardParams defines inputs to construct an FX forward trade with
// market-standard date conventions.
//
// The payment date is either given explicitly or derived from the trade date:
// spot = trade date + spot lag business days, payment = spot + tenor months,
// both adjusted Modified Following on the given calendar.
type ForwardParams struct {
	// Dates
	TradeDate   time.Time
	PaymentDate time.Time // optional explicit settlement; overrides TenorMonths
	TenorMonths int

	// SpotLagDays overrides the market default of T+2. Nil means T+2; a
	// pointer to zero is a genuine T+0 spot.
	SpotLagDays *int
	Calendar    calendar.CalendarID

	// Economics
	BaseNotional    currency.CurrencyAmount
	CounterCurrency currency.Currency
	ForwardRate     float64 // counter units per one base unit
}

func defaultSpotLagDays() int {
	return 2
}

// NewForwardTrade validates the params, resolves the settlement date, and
// constructs the forward with the counter leg derived from the agreed rate.
func NewForwardTrade(params ForwardParams) (FxForward, error) {
	if params.TradeDate.IsZero() && params.PaymentDate.IsZero() {
		return FxForward{}, fmt.Errorf("NewForwardTrade: TradeDate or PaymentDate is required")
	}
	if params.BaseNotional.Currency == "" {
		return FxForward{}, fmt.Errorf("NewForwardTrade: BaseNotional currency is required")
	}
	if params.CounterCurrency == "" {
		return FxForward{}, fmt.Errorf("NewForwardTrade: CounterCurrency is required")
	}
	if params.ForwardRate <= 0 {
		return FxForward{}, fmt.Errorf("NewForwardTrade: ForwardRate must be positive, got %v", params.ForwardRate)
	}

	cal := params.Calendar
	if cal == "" {
		cal = calendar.WeekendsOnly
	}

	var paymentDate time.Time
	if !params.PaymentDate.IsZero() {
		paymentDate = calendar.Adjust(cal, params.PaymentDate)
	} else {
		spotLag := defaultSpotLagDays()
		if params.SpotLagDays != nil {
			if *params.SpotLagDays < 0 {
				return FxForward{}, fmt.Errorf("NewForwardTrade: SpotLagDays must be non-negative, got %d", *params.SpotLagDays)
			}
			spotLag = *params.SpotLagDays
		}
		spot := calendar.AddBusinessDays(cal, params.TradeDate, spotLag)
		paymentDate = calendar.Adjust(cal, utils.AddMonth(spot, params.TenorMonths))
	}

	rate, err := currency.NewFxRate(params.BaseNotional.Currency, params.CounterCurrency, params.ForwardRate)
	if err != nil {
		return FxForward{}, fmt.Errorf("NewForwardTrade: %w", err)
	}
	return ForwardFromRate(params.BaseNotional, rate, paymentDate)
}
