package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// ---------------------------------------------------------------------------
// Discounting
// ---------------------------------------------------------------------------

// DiscountCurve supplies present-value factors for future dates. It is a
// read-only capability injected by the caller.
type DiscountCurve interface {
	ValuationDate() time.Time
	DiscountFactor(date time.Time) (decimal.Decimal, error)
}

// FlatDiscountCurve discounts every future date at one constant rate.
type FlatDiscountCurve struct {
	rate          money.InterestRate
	valuationDate time.Time
	dayCount      temporal.DayCount
}

// NewFlatDiscountCurve creates a flat curve anchored at the valuation date,
// measuring year fractions with ACT/365F.
func NewFlatDiscountCurve(rate money.InterestRate, valuationDate time.Time) FlatDiscountCurve {
	return FlatDiscountCurve{rate: rate, valuationDate: valuationDate, dayCount: temporal.DayCountAct365F}
}

// NewFlatDiscountCurveWithDayCount creates a flat curve using the given
// day-count convention for year fractions.
func NewFlatDiscountCurveWithDayCount(rate money.InterestRate, valuationDate time.Time, dc temporal.DayCount) FlatDiscountCurve {
	return FlatDiscountCurve{rate: rate, valuationDate: valuationDate, dayCount: dc}
}

// Rate returns the curve rate.
func (c FlatDiscountCurve) Rate() money.InterestRate { return c.rate }

// ValuationDate returns the anchor date of the curve.
func (c FlatDiscountCurve) ValuationDate() time.Time { return c.valuationDate }

// DiscountFactor returns the present-value factor for the given date. Dates
// on or before the valuation date are not discounted and return 1.
func (c FlatDiscountCurve) DiscountFactor(date time.Time) (decimal.Decimal, error) {
	if !date.After(c.valuationDate) {
		return decimal.NewFromInt(1), nil
	}
	years := c.dayCount.YearFraction(c.valuationDate, date)
	return c.rate.DiscountFactor(years)
}

// PresentValue discounts the flow's amount back to the curve's valuation
// date.
func (cf CashFlow) PresentValue(curve DiscountCurve) (money.Money, error) {
	df, err := curve.DiscountFactor(cf.date)
	if err != nil {
		return money.Money{}, err
	}
	return cf.amount.Multiply(df).RoundCents(), nil
}

// PresentValue sums the discounted amounts of all flows in the schedule.
func (s CashFlowSchedule) PresentValue(curve DiscountCurve) (money.Money, error) {
	total := money.Zero(s.currency)
	for _, cf := range s.flows {
		pv, err := cf.PresentValue(curve)
		if err != nil {
			return money.Money{}, err
		}
		total, _ = total.Add(pv)
	}
	return total, nil
}
