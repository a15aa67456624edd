package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Compounding – immutable value object
// ---------------------------------------------------------------------------

// Compounding represents the compounding convention of an interest rate.
type Compounding struct {
	value          string
	periodsPerYear int
}

const (
	compoundingSimple     = "SIMPLE"
	compoundingMonthly    = "MONTHLY"
	compoundingQuarterly  = "QUARTERLY"
	compoundingSemiannual = "SEMIANNUAL"
	compoundingAnnual     = "ANNUAL"
)

var (
	CompoundingSimple     = Compounding{value: compoundingSimple, periodsPerYear: 0}
	CompoundingMonthly    = Compounding{value: compoundingMonthly, periodsPerYear: 12}
	CompoundingQuarterly  = Compounding{value: compoundingQuarterly, periodsPerYear: 4}
	CompoundingSemiannual = Compounding{value: compoundingSemiannual, periodsPerYear: 2}
	CompoundingAnnual     = Compounding{value: compoundingAnnual, periodsPerYear: 1}
)

var validCompoundings = map[string]Compounding{
	compoundingSimple:     CompoundingSimple,
	compoundingMonthly:    CompoundingMonthly,
	compoundingQuarterly:  CompoundingQuarterly,
	compoundingSemiannual: CompoundingSemiannual,
	compoundingAnnual:     CompoundingAnnual,
}

// NewCompounding creates a Compounding from a raw string.
func NewCompounding(s string) (Compounding, error) {
	v, ok := validCompoundings[s]
	if !ok {
		return Compounding{}, fmt.Errorf("invalid compounding convention: %q", s)
	}
	return v, nil
}

// PeriodsPerYear returns the number of compounding periods per year, or 0 for
// simple interest.
func (c Compounding) PeriodsPerYear() int { return c.periodsPerYear }

// String returns the string representation of the convention.
func (c Compounding) String() string { return c.value }

// IsZero returns true if the convention has not been initialised.
func (c Compounding) IsZero() bool { return c.value == "" }

// Equal returns true when both conventions carry the same value.
func (c Compounding) Equal(other Compounding) bool { return c.value == other.value }

// ---------------------------------------------------------------------------
// InterestRate – immutable value object
// ---------------------------------------------------------------------------

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	tenK    = decimal.NewFromInt(10_000)
)

// InterestRate is an annual nominal interest rate stored as an exact decimal
// fraction (0.06 for 6%). The rate must be non-negative.
type InterestRate struct {
	rate        decimal.Decimal
	compounding Compounding
}

// NewInterestRate creates an InterestRate after validating the rate is non-negative.
func NewInterestRate(rate decimal.Decimal, compounding Compounding) (InterestRate, error) {
	if rate.IsNegative() {
		return InterestRate{}, fmt.Errorf("rate must be non-negative, got %s", rate.String())
	}
	if compounding.IsZero() {
		compounding = CompoundingMonthly
	}
	return InterestRate{rate: rate, compounding: compounding}, nil
}

// NewRateFromPercent creates an InterestRate from a percentage literal, so
// 6.0 becomes the fraction 0.06. The conversion is exact.
func NewRateFromPercent(percent decimal.Decimal, compounding Compounding) (InterestRate, error) {
	return NewInterestRate(percent.Div(hundred), compounding)
}

// NewRateFromBasisPoints creates an InterestRate from basis points, so 525
// becomes the fraction 0.0525.
func NewRateFromBasisPoints(bps int64, compounding Compounding) (InterestRate, error) {
	return NewInterestRate(decimal.NewFromInt(bps).Div(tenK), compounding)
}

// Rate returns the rate as a decimal fraction.
func (r InterestRate) Rate() decimal.Decimal { return r.rate }

// Compounding returns the compounding convention.
func (r InterestRate) Compounding() Compounding { return r.compounding }

// Percent returns the rate as a percentage (0.0525 -> 5.25).
func (r InterestRate) Percent() decimal.Decimal { return r.rate.Mul(hundred) }

// BasisPoints returns the rate in basis points (0.0525 -> 525).
func (r InterestRate) BasisPoints() decimal.Decimal { return r.rate.Mul(tenK) }

// PeriodicRate returns the per-period rate for the given number of payment
// periods per year, at full decimal precision.
func (r InterestRate) PeriodicRate(periodsPerYear int) (decimal.Decimal, error) {
	if periodsPerYear <= 0 {
		return decimal.Decimal{}, fmt.Errorf("periods per year must be positive, got %d", periodsPerYear)
	}
	return r.rate.Div(decimal.NewFromInt(int64(periodsPerYear))), nil
}

// CompoundFactor returns the growth factor over the given number of years.
// Simple interest uses 1 + r*t; periodic compounding uses (1 + r/m)^(m*t).
func (r InterestRate) CompoundFactor(years decimal.Decimal) (decimal.Decimal, error) {
	if r.compounding.Equal(CompoundingSimple) {
		return one.Add(r.rate.Mul(years)), nil
	}

	m := decimal.NewFromInt(int64(r.compounding.periodsPerYear))
	base := one.Add(r.rate.Div(m))
	exp := m.Mul(years)

	if exp.IsInteger() {
		return base.PowInt32(int32(exp.IntPart()))
	}
	return base.PowWithPrecision(exp, 16)
}

// DiscountFactor returns the present-value factor over the given number of
// years, the multiplicative inverse of CompoundFactor.
func (r InterestRate) DiscountFactor(years decimal.Decimal) (decimal.Decimal, error) {
	cf, err := r.CompoundFactor(years)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if cf.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("compound factor is zero for rate %s over %s years", r.rate, years)
	}
	return one.Div(cf), nil
}

// ConvertTo returns the equivalent rate under another compounding convention,
// chosen so that both rates grow an investment by the same factor over one
// year. Converting 5% MONTHLY to ANNUAL therefore yields a rate slightly
// above 5%.
func (r InterestRate) ConvertTo(target Compounding) (InterestRate, error) {
	if target.IsZero() {
		return InterestRate{}, fmt.Errorf("target compounding convention is required")
	}
	if r.compounding.Equal(target) {
		return r, nil
	}

	factor, err := r.CompoundFactor(one)
	if err != nil {
		return InterestRate{}, err
	}

	if target.Equal(CompoundingSimple) {
		return NewInterestRate(factor.Sub(one), target)
	}

	m := decimal.NewFromInt(int64(target.periodsPerYear))
	root, err := factor.PowWithPrecision(one.Div(m), 16)
	if err != nil {
		return InterestRate{}, err
	}
	return NewInterestRate(root.Sub(one).Mul(m), target)
}

// IsZero returns true if the rate is zero.
func (r InterestRate) IsZero() bool { return r.rate.IsZero() }

// Equal returns true when both rate and compounding match.
func (r InterestRate) Equal(other InterestRate) bool {
	return r.rate.Equal(other.rate) && r.compounding.Equal(other.compounding)
}

// String formats the rate as a percentage with its compounding convention.
func (r InterestRate) String() string {
	return fmt.Sprintf("%s%% %s", r.Percent().StringFixed(3), r.compounding)
}

// ---------------------------------------------------------------------------
// Spread – immutable value object
// ---------------------------------------------------------------------------

// Spread is a rate adjustment expressed in basis points.
type Spread struct {
	basisPoints decimal.Decimal
}

// NewSpread creates a Spread from a basis-point amount.
func NewSpread(basisPoints decimal.Decimal) Spread {
	return Spread{basisPoints: basisPoints}
}

// NewSpreadFromBps creates a Spread from integer basis points.
func NewSpreadFromBps(bps int64) Spread {
	return Spread{basisPoints: decimal.NewFromInt(bps)}
}

// NewSpreadFromPercent creates a Spread from a percentage (2.5 -> 250 bps).
func NewSpreadFromPercent(percent decimal.Decimal) Spread {
	return Spread{basisPoints: percent.Mul(hundred)}
}

// NewSpreadFromDecimal creates a Spread from a decimal fraction (0.025 -> 250 bps).
func NewSpreadFromDecimal(fraction decimal.Decimal) Spread {
	return Spread{basisPoints: fraction.Mul(tenK)}
}

// BasisPoints returns the spread in basis points.
func (s Spread) BasisPoints() decimal.Decimal { return s.basisPoints }

// Decimal returns the spread as a decimal fraction (250 bps -> 0.025).
func (s Spread) Decimal() decimal.Decimal { return s.basisPoints.Div(tenK) }

// Percent returns the spread as a percentage (250 bps -> 2.5).
func (s Spread) Percent() decimal.Decimal { return s.basisPoints.Div(hundred) }

// Add returns the sum of two spreads.
func (s Spread) Add(other Spread) Spread {
	return Spread{basisPoints: s.basisPoints.Add(other.basisPoints)}
}

// Subtract returns the difference of two spreads.
func (s Spread) Subtract(other Spread) Spread {
	return Spread{basisPoints: s.basisPoints.Sub(other.basisPoints)}
}

// Negate returns the spread with its sign flipped.
func (s Spread) Negate() Spread {
	return Spread{basisPoints: s.basisPoints.Neg()}
}

// Multiply returns the spread scaled by the given factor.
func (s Spread) Multiply(factor decimal.Decimal) Spread {
	return Spread{basisPoints: s.basisPoints.Mul(factor)}
}

// ApplyTo returns the base rate adjusted by this spread, keeping the base
// rate's compounding convention.
func (s Spread) ApplyTo(base InterestRate) (InterestRate, error) {
	return NewInterestRate(base.rate.Add(s.Decimal()), base.compounding)
}

// String formats the spread in basis points.
func (s Spread) String() string {
	return fmt.Sprintf("%sbps", s.basisPoints.StringFixed(0))
}
