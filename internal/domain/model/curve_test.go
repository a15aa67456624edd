package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

func annualRate(t *testing.T, percent string) money.InterestRate {
	t.Helper()
	r, err := money.NewRateFromPercent(decimal.RequireFromString(percent), money.CompoundingAnnual)
	require.NoError(t, err)
	return r
}

func TestFlatDiscountCurve_DiscountFactor(t *testing.T) {
	valuation := day(2025, time.January, 1)
	curve := model.NewFlatDiscountCurve(annualRate(t, "5"), valuation)

	t.Run("dates on or before valuation are not discounted", func(t *testing.T) {
		for _, d := range []time.Time{valuation, day(2024, time.June, 1)} {
			df, err := curve.DiscountFactor(d)
			require.NoError(t, err)
			assert.True(t, df.Equal(decimal.NewFromInt(1)), "factor for %s = %s, want 1", d.Format(time.DateOnly), df)
		}
	})

	t.Run("one year out at 5 percent", func(t *testing.T) {
		// 2025 has 365 days, so ACT/365F gives exactly one year.
		df, err := curve.DiscountFactor(day(2026, time.January, 1))
		require.NoError(t, err)

		want := decimal.NewFromInt(1).Div(decimal.RequireFromString("1.05"))
		drift := df.Sub(want).Abs()
		assert.True(t, drift.LessThan(decimal.RequireFromString("0.0000000001")),
			"factor = %s, want 1/1.05", df)
	})
}

func TestFlatDiscountCurve_WithDayCount(t *testing.T) {
	valuation := day(2025, time.January, 1)
	curve := model.NewFlatDiscountCurveWithDayCount(annualRate(t, "5"), valuation, temporal.DayCountAct360)

	// 360 actual days over a 360 denominator is one full year under ACT/360.
	df, err := curve.DiscountFactor(valuation.AddDate(0, 0, 360))
	require.NoError(t, err)

	want := decimal.NewFromInt(1).Div(decimal.RequireFromString("1.05"))
	drift := df.Sub(want).Abs()
	assert.True(t, drift.LessThan(decimal.RequireFromString("0.0000000001")),
		"factor = %s, want 1/1.05", df)
}

func TestCashFlow_PresentValue(t *testing.T) {
	valuation := day(2025, time.January, 1)
	curve := model.NewFlatDiscountCurve(annualRate(t, "5"), valuation)

	cf, err := model.NewCashFlow(day(2026, time.January, 1), usd("1050"), valueobject.CashFlowBalloon)
	require.NoError(t, err)

	pv, err := cf.PresentValue(curve)
	require.NoError(t, err)

	// 1050 one year out at 5% discounts to 1000.
	drift := pv.Amount().Sub(decimal.NewFromInt(1000)).Abs()
	assert.True(t, drift.LessThan(decimal.RequireFromString("0.01")),
		"present value = %s, want 1000.00", pv)
}

func TestCashFlowSchedule_PresentValue(t *testing.T) {
	valuation := day(2025, time.January, 1)

	flows := []model.CashFlow{
		mustFlow(t, day(2026, time.January, 1), "1050", valueobject.CashFlowInterest),
		mustFlow(t, day(2026, time.January, 1), "2100", valueobject.CashFlowPrincipal),
	}
	schedule, err := model.NewCashFlowSchedule(money.USD, flows)
	require.NoError(t, err)

	t.Run("discounted at 5 percent", func(t *testing.T) {
		curve := model.NewFlatDiscountCurve(annualRate(t, "5"), valuation)

		pv, err := schedule.PresentValue(curve)
		require.NoError(t, err)

		drift := pv.Amount().Sub(decimal.NewFromInt(3000)).Abs()
		assert.True(t, drift.LessThan(decimal.RequireFromString("0.01")),
			"present value = %s, want 3000.00", pv)
	})

	t.Run("zero rate leaves amounts unchanged", func(t *testing.T) {
		curve := model.NewFlatDiscountCurve(annualRate(t, "0"), valuation)

		pv, err := schedule.PresentValue(curve)
		require.NoError(t, err)
		assert.True(t, pv.Equal(usd("3150")), "present value = %s, want 3150", pv)
	})
}
