package temporal

import "fmt"

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency is how often loan payments occur. ZERO_COUPON means no
// periodic payments at all: principal and accrued interest settle entirely at
// maturity.
type PaymentFrequency struct {
	value          string
	periodsPerYear int
}

const (
	frequencyMonthly    = "MONTHLY"
	frequencyQuarterly  = "QUARTERLY"
	frequencySemiannual = "SEMIANNUAL"
	frequencyAnnual     = "ANNUAL"
	frequencyZeroCoupon = "ZERO_COUPON"
)

var (
	FrequencyMonthly    = PaymentFrequency{value: frequencyMonthly, periodsPerYear: 12}
	FrequencyQuarterly  = PaymentFrequency{value: frequencyQuarterly, periodsPerYear: 4}
	FrequencySemiannual = PaymentFrequency{value: frequencySemiannual, periodsPerYear: 2}
	FrequencyAnnual     = PaymentFrequency{value: frequencyAnnual, periodsPerYear: 1}
	FrequencyZeroCoupon = PaymentFrequency{value: frequencyZeroCoupon, periodsPerYear: 0}
)

var validPaymentFrequencies = map[string]PaymentFrequency{
	frequencyMonthly:    FrequencyMonthly,
	frequencyQuarterly:  FrequencyQuarterly,
	frequencySemiannual: FrequencySemiannual,
	frequencyAnnual:     FrequencyAnnual,
	frequencyZeroCoupon: FrequencyZeroCoupon,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validPaymentFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("invalid payment frequency: %q", s)
	}
	return v, nil
}

// PeriodsPerYear returns the number of payment periods per year, or 0 for
// ZERO_COUPON.
func (f PaymentFrequency) PeriodsPerYear() int { return f.periodsPerYear }

// MonthStep returns the calendar-month interval between consecutive payments,
// or 0 for ZERO_COUPON.
func (f PaymentFrequency) MonthStep() int {
	if f.periodsPerYear == 0 {
		return 0
	}
	return 12 / f.periodsPerYear
}

// IsPeriodic returns true for frequencies with recurring payments.
func (f PaymentFrequency) IsPeriodic() bool { return f.periodsPerYear > 0 }

// String returns the string representation of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool { return f.value == other.value }
