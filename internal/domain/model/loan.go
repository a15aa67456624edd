package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// ---------------------------------------------------------------------------
// Loan – aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable installment-loan aggregate. Construction validates all
// invariants atomically; every derived value (periodic rate, payment count,
// maturity date, schedule) is a pure function of the validated fields and is
// computed on demand, never cached.
type Loan struct {
	id               uuid.UUID
	principal        money.Money
	annualRate       money.InterestRate
	term             temporal.Period
	frequency        temporal.PaymentFrequency
	amortizationType valueobject.AmortizationType
	originationDate  time.Time
	firstPaymentDate time.Time
	calendar         temporal.BusinessDayCalendar
	convention       temporal.BusinessDayConvention
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewLoan creates a validated Loan. Validation runs in a fixed order and
// fails fast on the first violation. A zero firstPaymentDate means the first
// payment defaults to one frequency interval after the origination date.
func NewLoan(
	principal money.Money,
	annualRate money.InterestRate,
	term temporal.Period,
	frequency temporal.PaymentFrequency,
	amortizationType valueobject.AmortizationType,
	originationDate time.Time,
	firstPaymentDate time.Time,
) (*Loan, error) {
	if !principal.IsPositive() {
		return nil, valueobject.NewValidationError("principal must be positive")
	}
	if annualRate.Rate().IsNegative() {
		return nil, valueobject.NewValidationError("rate must be non-negative")
	}
	if frequency.IsZero() {
		return nil, valueobject.NewValidationError("payment frequency is required")
	}
	if amortizationType.IsZero() {
		return nil, valueobject.NewValidationError("amortization type is required")
	}
	if frequency.Equal(temporal.FrequencyZeroCoupon) && !amortizationType.Equal(valueobject.AmortizationBullet) {
		return nil, valueobject.NewValidationError("ZERO_COUPON frequency is only valid with BULLET amortization")
	}
	if term.IsZero() {
		return nil, valueobject.NewValidationError("term is required")
	}
	if !firstPaymentDate.IsZero() && !firstPaymentDate.After(originationDate) {
		return nil, valueobject.NewValidationError("first payment date must be after origination date")
	}

	if frequency.IsPeriodic() {
		months, err := term.Months()
		if err != nil {
			return nil, valueobject.NewValidationError("term %s is not expressible in whole months", term)
		}
		if months%frequency.MonthStep() != 0 {
			return nil, valueobject.NewValidationError(
				"term %s is not a whole number of %s periods", term, frequency)
		}
	}

	now := time.Now().UTC()
	return &Loan{
		id:               uuid.New(),
		principal:        principal,
		annualRate:       annualRate,
		term:             term,
		frequency:        frequency,
		amortizationType: amortizationType,
		originationDate:  originationDate,
		firstPaymentDate: firstPaymentDate,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// NewLoanFromFloat creates a Loan from float and string literals, converting
// to exact decimals once at this boundary. The rate is a percentage literal
// (6.5 means 6.5% per year) and the term uses compact notation ("30Y", "72M").
func NewLoanFromFloat(
	principal float64,
	currency money.Currency,
	ratePercent float64,
	term string,
	frequency temporal.PaymentFrequency,
	amortizationType valueobject.AmortizationType,
	originationDate time.Time,
) (*Loan, error) {
	rate, err := money.NewRateFromPercent(decimal.NewFromFloat(ratePercent), money.CompoundingMonthly)
	if err != nil {
		return nil, valueobject.NewValidationError("rate must be non-negative")
	}
	period, err := temporal.ParsePeriod(term)
	if err != nil {
		return nil, valueobject.NewValidationError("%s", err)
	}
	return NewLoan(money.NewFromFloat(principal, currency), rate, period,
		frequency, amortizationType, originationDate, time.Time{})
}

// NewMortgage creates a monthly level-payment loan.
func NewMortgage(principal money.Money, rate money.InterestRate, term temporal.Period, originationDate time.Time) (*Loan, error) {
	return NewLoan(principal, rate, term, temporal.FrequencyMonthly,
		valueobject.AmortizationLevelPayment, originationDate, time.Time{})
}

// NewAutoLoan creates a monthly level-payment loan, conventionally with a
// term expressed in months.
func NewAutoLoan(principal money.Money, rate money.InterestRate, term temporal.Period, originationDate time.Time) (*Loan, error) {
	return NewLoan(principal, rate, term, temporal.FrequencyMonthly,
		valueobject.AmortizationLevelPayment, originationDate, time.Time{})
}

// NewPersonalLoan creates a monthly level-payment loan.
func NewPersonalLoan(principal money.Money, rate money.InterestRate, term temporal.Period, originationDate time.Time) (*Loan, error) {
	return NewLoan(principal, rate, term, temporal.FrequencyMonthly,
		valueobject.AmortizationLevelPayment, originationDate, time.Time{})
}

// NewBulletLoan creates a zero-coupon bullet loan: the full principal is due
// at origination date plus term, with no periodic payments.
func NewBulletLoan(principal money.Money, rate money.InterestRate, term temporal.Period, originationDate time.Time) (*Loan, error) {
	return NewLoan(principal, rate, term, temporal.FrequencyZeroCoupon,
		valueobject.AmortizationBullet, originationDate, time.Time{})
}

// RehydrateLoan rebuilds a Loan from persisted state, re-running the
// construction invariants.
func RehydrateLoan(
	id uuid.UUID,
	principal money.Money,
	annualRate money.InterestRate,
	term temporal.Period,
	frequency temporal.PaymentFrequency,
	amortizationType valueobject.AmortizationType,
	originationDate time.Time,
	firstPaymentDate time.Time,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Loan, error) {
	loan, err := NewLoan(principal, annualRate, term, frequency, amortizationType, originationDate, firstPaymentDate)
	if err != nil {
		return nil, err
	}
	loan.id = id
	loan.version = version
	loan.createdAt = createdAt
	loan.updatedAt = updatedAt
	return loan, nil
}

// WithBusinessDays returns a copy of the loan whose generated payment dates
// are adjusted with the given calendar and convention.
func (l *Loan) WithBusinessDays(calendar temporal.BusinessDayCalendar, convention temporal.BusinessDayConvention) *Loan {
	copied := *l
	copied.calendar = calendar
	copied.convention = convention
	return &copied
}

// ---- accessors ----

func (l *Loan) ID() uuid.UUID                                  { return l.id }
func (l *Loan) Principal() money.Money                         { return l.principal }
func (l *Loan) AnnualRate() money.InterestRate                 { return l.annualRate }
func (l *Loan) Term() temporal.Period                          { return l.term }
func (l *Loan) Frequency() temporal.PaymentFrequency           { return l.frequency }
func (l *Loan) AmortizationType() valueobject.AmortizationType { return l.amortizationType }
func (l *Loan) OriginationDate() time.Time                     { return l.originationDate }
func (l *Loan) Version() int                                   { return l.version }
func (l *Loan) CreatedAt() time.Time                           { return l.createdAt }
func (l *Loan) UpdatedAt() time.Time                           { return l.updatedAt }

// FirstPaymentDate returns the first payment date: the explicit date when one
// was supplied, otherwise one frequency interval after origination. Bullet
// loans pay on their maturity date.
func (l *Loan) FirstPaymentDate() time.Time {
	if !l.firstPaymentDate.IsZero() {
		return l.firstPaymentDate
	}
	if l.amortizationType.Equal(valueobject.AmortizationBullet) {
		return l.MaturityDate()
	}
	return temporal.AddMonths(l.originationDate, l.frequency.MonthStep())
}

// ---- derived operations ----

// PeriodicRate returns the per-period rate for the loan's payment frequency.
func (l *Loan) PeriodicRate() (decimal.Decimal, error) {
	if !l.frequency.IsPeriodic() {
		return decimal.Decimal{}, valueobject.NewValidationError("ZERO_COUPON frequency has no periodic rate")
	}
	return l.annualRate.PeriodicRate(l.frequency.PeriodsPerYear())
}

// NumberOfPayments returns the count of scheduled payments: the term divided
// into frequency periods, or 1 for a bullet loan.
func (l *Loan) NumberOfPayments() (int, error) {
	if l.amortizationType.Equal(valueobject.AmortizationBullet) {
		return 1, nil
	}
	months, err := l.term.Months()
	if err != nil {
		return 0, valueobject.NewValidationError("term %s is not expressible in whole months", l.term)
	}
	return months / l.frequency.MonthStep(), nil
}

// Payment returns the constant per-period payment for a LEVEL_PAYMENT loan.
// The other amortization types have period-varying payments and return a
// ValidationError; their schedules are produced by GenerateSchedule.
func (l *Loan) Payment() (money.Money, error) {
	if !l.amortizationType.Equal(valueobject.AmortizationLevelPayment) {
		return money.Money{}, valueobject.NewValidationError(
			"payment amount varies for %s amortization", l.amortizationType)
	}
	rate, err := l.PeriodicRate()
	if err != nil {
		return money.Money{}, err
	}
	n, err := l.NumberOfPayments()
	if err != nil {
		return money.Money{}, err
	}
	return CalculateLevelPayment(l.principal, rate, n)
}

// MaturityDate returns the date of the final payment. Bullet loans mature at
// origination plus term; periodic loans mature on the last generated payment
// date, which reflects the first-payment anchor and business-day adjustment.
func (l *Loan) MaturityDate() time.Time {
	if l.amortizationType.Equal(valueobject.AmortizationBullet) {
		return l.term.AddTo(l.originationDate)
	}

	n, err := l.NumberOfPayments()
	if err != nil || n == 0 {
		return l.term.AddTo(l.originationDate)
	}
	date := temporal.AddMonths(l.FirstPaymentDate(), (n-1)*l.frequency.MonthStep())
	if l.calendar != nil {
		date = l.convention.Adjust(date, l.calendar)
	}
	return date
}

// GenerateSchedule produces the loan's full cash flow schedule by dispatching
// on the amortization type. The dispatch is exhaustive over the closed
// variant set.
func (l *Loan) GenerateSchedule() (CashFlowSchedule, error) {
	if l.amortizationType.Equal(valueobject.AmortizationBullet) {
		return GenerateBulletSchedule(l.principal, l.MaturityDate())
	}

	rate, err := l.PeriodicRate()
	if err != nil {
		return CashFlowSchedule{}, err
	}
	n, err := l.NumberOfPayments()
	if err != nil {
		return CashFlowSchedule{}, err
	}
	dates, err := GeneratePaymentDates(l.FirstPaymentDate(), l.frequency, n, l.calendar, l.convention)
	if err != nil {
		return CashFlowSchedule{}, err
	}

	switch l.amortizationType {
	case valueobject.AmortizationLevelPayment:
		payment, err := CalculateLevelPayment(l.principal, rate, n)
		if err != nil {
			return CashFlowSchedule{}, err
		}
		return GenerateLevelPaymentSchedule(l.principal, rate, n, dates, payment)
	case valueobject.AmortizationLevelPrincipal:
		return GenerateLevelPrincipalSchedule(l.principal, rate, n, dates)
	case valueobject.AmortizationInterestOnly:
		return GenerateInterestOnlySchedule(l.principal, rate, n, dates)
	default:
		return CashFlowSchedule{}, valueobject.NewValidationError(
			"unsupported amortization type %s", l.amortizationType)
	}
}

// TotalInterest returns the sum of the INTEREST flows of the generated
// schedule.
func (l *Loan) TotalInterest() (money.Money, error) {
	schedule, err := l.GenerateSchedule()
	if err != nil {
		return money.Money{}, err
	}
	return schedule.InterestFlows().TotalAmount(), nil
}

// TotalPayments returns the sum of all flow amounts of the generated
// schedule, which equals principal plus total interest.
func (l *Loan) TotalPayments() (money.Money, error) {
	schedule, err := l.GenerateSchedule()
	if err != nil {
		return money.Money{}, err
	}
	return schedule.TotalAmount(), nil
}

// String summarises the loan.
func (l *Loan) String() string {
	return fmt.Sprintf("Loan %s: %s at %s over %s, %s %s",
		l.id, l.principal, l.annualRate, l.term, l.frequency, l.amortizationType)
}
