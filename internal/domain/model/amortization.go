package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// The schedule generators below are pure functions over immutable inputs.
// All monetary arithmetic is exact decimal; per-period amounts are rounded to
// cents and the final period's principal component is set to the remaining
// balance, so cumulative principal flows reconcile to the original principal
// without drift.

var decimalOne = decimal.NewFromInt(1)

// CalculateLevelPayment computes the constant per-period payment for a fully
// amortizing loan using the annuity formula
//
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero periodic rate degenerates to an even split of the principal, and a
// single payment is principal plus one period of interest.
func CalculateLevelPayment(principal money.Money, periodicRate decimal.Decimal, numPayments int) (money.Money, error) {
	if periodicRate.IsNegative() {
		return money.Money{}, valueobject.NewValidationError("rate must be non-negative")
	}
	if numPayments <= 0 {
		return money.Money{}, valueobject.NewValidationError("number of payments must be positive")
	}

	if periodicRate.IsZero() {
		payment, err := principal.Div(int64(numPayments))
		if err != nil {
			return money.Money{}, err
		}
		return payment, nil
	}

	if numPayments == 1 {
		return principal.Multiply(decimalOne.Add(periodicRate)).RoundCents(), nil
	}

	factor, err := decimalOne.Add(periodicRate).PowInt32(int32(numPayments))
	if err != nil {
		return money.Money{}, err
	}

	numerator := principal.Multiply(periodicRate).Multiply(factor)
	return numerator.Multiply(decimalOne.Div(factor.Sub(decimalOne))).RoundCents(), nil
}

// GeneratePaymentDates produces the ordered sequence of numPayments payment
// dates. Date k is start advanced by k frequency intervals using
// calendar-month arithmetic; a day-of-month overflow clamps to the last valid
// day of the target month. When both a calendar and a convention are supplied
// every date, including the first, is business-day adjusted.
func GeneratePaymentDates(
	start time.Time,
	frequency temporal.PaymentFrequency,
	numPayments int,
	calendar temporal.BusinessDayCalendar,
	convention temporal.BusinessDayConvention,
) ([]time.Time, error) {
	if numPayments < 0 {
		return nil, valueobject.NewValidationError("number of payments must not be negative")
	}
	if numPayments == 0 {
		return []time.Time{}, nil
	}
	if !frequency.IsPeriodic() {
		return nil, valueobject.NewValidationError("%s frequency has no periodic payment dates", frequency)
	}

	step := frequency.MonthStep()
	dates := make([]time.Time, 0, numPayments)
	for k := 0; k < numPayments; k++ {
		date := temporal.AddMonths(start, k*step)
		if calendar != nil {
			date = convention.Adjust(date, calendar)
		}
		dates = append(dates, date)
	}
	return dates, nil
}

// GenerateLevelPaymentSchedule amortizes the principal over numPayments
// periods at a constant total payment. Each period emits one INTEREST flow
// (balance times rate) and one PRINCIPAL flow (payment minus interest); the
// final period's principal is the remaining balance. The result holds
// 2*numPayments flows.
func GenerateLevelPaymentSchedule(
	principal money.Money,
	periodicRate decimal.Decimal,
	numPayments int,
	paymentDates []time.Time,
	paymentAmount money.Money,
) (CashFlowSchedule, error) {
	if periodicRate.IsNegative() {
		return CashFlowSchedule{}, valueobject.NewValidationError("rate must be non-negative")
	}
	if len(paymentDates) != numPayments {
		return CashFlowSchedule{}, valueobject.NewValidationError("payment dates count must match number of payments")
	}

	flows := make([]CashFlow, 0, 2*numPayments)
	balance := principal

	for i := 0; i < numPayments; i++ {
		interest := balance.Multiply(periodicRate).RoundCents()

		var principalPart money.Money
		if i == numPayments-1 {
			principalPart = balance
		} else {
			var err error
			principalPart, err = paymentAmount.Subtract(interest)
			if err != nil {
				return CashFlowSchedule{}, err
			}
		}

		interestFlow, err := NewCashFlow(paymentDates[i], interest, valueobject.CashFlowInterest)
		if err != nil {
			return CashFlowSchedule{}, err
		}
		principalFlow, err := NewCashFlow(paymentDates[i], principalPart, valueobject.CashFlowPrincipal)
		if err != nil {
			return CashFlowSchedule{}, err
		}
		flows = append(flows, interestFlow, principalFlow)

		balance, err = balance.Subtract(principalPart)
		if err != nil {
			return CashFlowSchedule{}, err
		}
	}

	return NewCashFlowSchedule(principal.Currency(), flows)
}

// GenerateLevelPrincipalSchedule amortizes the principal in equal per-period
// principal components with declining interest. The final period's principal
// absorbs any division remainder. The result holds 2*numPayments flows.
func GenerateLevelPrincipalSchedule(
	principal money.Money,
	periodicRate decimal.Decimal,
	numPayments int,
	paymentDates []time.Time,
) (CashFlowSchedule, error) {
	if periodicRate.IsNegative() {
		return CashFlowSchedule{}, valueobject.NewValidationError("rate must be non-negative")
	}
	if numPayments <= 0 {
		return CashFlowSchedule{}, valueobject.NewValidationError("number of payments must be positive")
	}
	if len(paymentDates) != numPayments {
		return CashFlowSchedule{}, valueobject.NewValidationError("payment dates count must match number of payments")
	}

	perPeriod, err := principal.Div(int64(numPayments))
	if err != nil {
		return CashFlowSchedule{}, err
	}
	perPeriod = perPeriod.RoundCents()

	flows := make([]CashFlow, 0, 2*numPayments)
	balance := principal

	for i := 0; i < numPayments; i++ {
		interest := balance.Multiply(periodicRate).RoundCents()

		principalPart := perPeriod
		if i == numPayments-1 {
			principalPart = balance
		}

		interestFlow, err := NewCashFlow(paymentDates[i], interest, valueobject.CashFlowInterest)
		if err != nil {
			return CashFlowSchedule{}, err
		}
		principalFlow, err := NewCashFlow(paymentDates[i], principalPart, valueobject.CashFlowPrincipal)
		if err != nil {
			return CashFlowSchedule{}, err
		}
		flows = append(flows, interestFlow, principalFlow)

		balance, err = balance.Subtract(principalPart)
		if err != nil {
			return CashFlowSchedule{}, err
		}
	}

	return NewCashFlowSchedule(principal.Currency(), flows)
}

// GenerateInterestOnlySchedule emits one INTEREST flow of principal times
// rate per period, with the balance unchanged for the life of the schedule,
// followed by a single BALLOON flow of the full principal on the final
// payment date. The result holds numPayments+1 flows.
func GenerateInterestOnlySchedule(
	principal money.Money,
	periodicRate decimal.Decimal,
	numPayments int,
	paymentDates []time.Time,
) (CashFlowSchedule, error) {
	if periodicRate.IsNegative() {
		return CashFlowSchedule{}, valueobject.NewValidationError("rate must be non-negative")
	}
	if numPayments < 1 {
		return CashFlowSchedule{}, valueobject.NewValidationError("schedule must contain at least one payment")
	}
	if len(paymentDates) != numPayments {
		return CashFlowSchedule{}, valueobject.NewValidationError("payment dates count must match number of payments")
	}

	interest := principal.Multiply(periodicRate).RoundCents()

	flows := make([]CashFlow, 0, numPayments+1)
	for i := 0; i < numPayments; i++ {
		flow, err := NewCashFlow(paymentDates[i], interest, valueobject.CashFlowInterest)
		if err != nil {
			return CashFlowSchedule{}, err
		}
		flows = append(flows, flow)
	}

	balloon, err := NewCashFlow(paymentDates[numPayments-1], principal, valueobject.CashFlowBalloon)
	if err != nil {
		return CashFlowSchedule{}, err
	}
	flows = append(flows, balloon)

	return NewCashFlowSchedule(principal.Currency(), flows)
}

// GenerateBulletSchedule produces a single BALLOON flow of the full principal
// on the maturity date.
func GenerateBulletSchedule(principal money.Money, maturityDate time.Time) (CashFlowSchedule, error) {
	balloon, err := NewCashFlow(maturityDate, principal, valueobject.CashFlowBalloon)
	if err != nil {
		return CashFlowSchedule{}, err
	}
	return NewCashFlowSchedule(principal.Currency(), []CashFlow{balloon})
}
