// Package pricing maps seat counts to price tiers and amounts.
//
// All functions are pure. Seat counts are expected to be positive; callers
// validate them before asking for a price.
package pricing

import (
	"fmt"

	"github.com/leafthq/leaft/internal/model"
	"github.com/shopspring/decimal"
)

type Tier string

const (
	Tier1To5    Tier = "1-5"
	Tier6To19   Tier = "6-19"
	Tier20To99  Tier = "20-99"
	Tier100Plus Tier = "100+"
)

// Currency of every amount returned by this package.
const Currency = "eur"

// Tiers lists the tiers in ascending seat order.
var Tiers = []Tier{Tier1To5, Tier6To19, Tier20To99, Tier100Plus}

// perSeat holds whole-euro prices per seat and billing cycle.
var perSeat = map[Tier]map[model.PlanType]int64{
	Tier1To5:    {model.PlanMonthly: 9, model.PlanAnnual: 90},
	Tier6To19:   {model.PlanMonthly: 8, model.PlanAnnual: 80},
	Tier20To99:  {model.PlanMonthly: 7, model.PlanAnnual: 70},
	Tier100Plus: {model.PlanMonthly: 6, model.PlanAnnual: 60},
}

// TierFor returns the tier a seat count falls into.
func TierFor(seats int) Tier {
	switch {
	case seats <= 5:
		return Tier1To5
	case seats <= 19:
		return Tier6To19
	case seats <= 99:
		return Tier20To99
	default:
		return Tier100Plus
	}
}

// PerSeatPrice returns the whole-euro price of one seat. Unknown plan types
// price as monthly.
func PerSeatPrice(tier Tier, plan model.PlanType) int64 {
	prices := perSeat[tier]
	if p, ok := prices[plan]; ok {
		return p
	}
	return prices[model.PlanMonthly]
}

// Amount is the whole-euro total for seats on plan.
func Amount(seats int, plan model.PlanType) int64 {
	return PerSeatPrice(TierFor(seats), plan) * int64(seats)
}

// AmountCents is Amount in the smallest currency unit.
func AmountCents(seats int, plan model.PlanType) int64 {
	return Amount(seats, plan) * 100
}

// PerSeatCents is the unit amount submitted to Stripe for one seat.
func PerSeatCents(seats int, plan model.PlanType) int64 {
	return PerSeatPrice(TierFor(seats), plan) * 100
}

// ParsePlanType validates a plan type coming from user input.
func ParsePlanType(s string) (model.PlanType, error) {
	switch model.PlanType(s) {
	case model.PlanMonthly, model.PlanAnnual:
		return model.PlanType(s), nil
	default:
		return "", fmt.Errorf("unknown plan type %q", s)
	}
}

// Quote is a priced seat count, ready for display.
type Quote struct {
	Seats        int             `json:"seats"`
	Plan         model.PlanType  `json:"plan_type"`
	Tier         Tier            `json:"tier"`
	PerSeat      decimal.Decimal `json:"per_seat"`
	Total        decimal.Decimal `json:"total"`
	TotalCents   int64           `json:"total_cents"`
	Currency     string          `json:"currency"`
	MonthlyTotal decimal.Decimal `json:"monthly_equivalent"`
}

// NewQuote prices seats on plan. MonthlyTotal spreads annual totals over
// twelve months, rounded to the cent.
func NewQuote(seats int, plan model.PlanType) Quote {
	tier := TierFor(seats)
	total := decimal.NewFromInt(Amount(seats, plan))

	monthly := total
	if plan == model.PlanAnnual {
		monthly = total.Div(decimal.NewFromInt(12)).Round(2)
	}

	return Quote{
		Seats:        seats,
		Plan:         plan,
		Tier:         tier,
		PerSeat:      decimal.NewFromInt(PerSeatPrice(tier, plan)),
		Total:        total,
		TotalCents:   AmountCents(seats, plan),
		Currency:     Currency,
		MonthlyTotal: monthly,
	}
}
