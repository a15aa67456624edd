package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// InterestRate
// ---------------------------------------------------------------------------

func TestNewInterestRate_RejectsNegative(t *testing.T) {
	if _, err := NewInterestRate(decimal.RequireFromString("-0.01"), CompoundingMonthly); err == nil {
		t.Error("negative rate expected error, got nil")
	}
}

func TestNewRateFromPercent(t *testing.T) {
	r, err := NewRateFromPercent(decimal.RequireFromString("6.0"), CompoundingMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Rate().Equal(decimal.RequireFromString("0.06")) {
		t.Errorf("Rate() = %s, want 0.06", r.Rate())
	}
	if !r.Percent().Equal(decimal.RequireFromString("6")) {
		t.Errorf("Percent() = %s, want 6", r.Percent())
	}
}

func TestNewRateFromBasisPoints(t *testing.T) {
	r, err := NewRateFromBasisPoints(525, CompoundingMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Rate().Equal(decimal.RequireFromString("0.0525")) {
		t.Errorf("Rate() = %s, want 0.0525", r.Rate())
	}
	if !r.BasisPoints().Equal(decimal.NewFromInt(525)) {
		t.Errorf("BasisPoints() = %s, want 525", r.BasisPoints())
	}
}

func TestPeriodicRate(t *testing.T) {
	r, _ := NewRateFromPercent(decimal.RequireFromString("6.0"), CompoundingMonthly)

	periodic, err := r.PeriodicRate(12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !periodic.Equal(decimal.RequireFromString("0.005")) {
		t.Errorf("PeriodicRate(12) = %s, want 0.005", periodic)
	}

	if _, err := r.PeriodicRate(0); err == nil {
		t.Error("PeriodicRate(0) expected error, got nil")
	}
}

func TestCompoundFactor_Simple(t *testing.T) {
	r, _ := NewInterestRate(decimal.RequireFromString("0.10"), CompoundingSimple)
	factor, err := r.CompoundFactor(decimal.NewFromInt(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 + 0.10*2
	if !factor.Equal(decimal.RequireFromString("1.2")) {
		t.Errorf("simple factor = %s, want 1.2", factor)
	}
}

func TestCompoundFactor_AnnualWholeYears(t *testing.T) {
	r, _ := NewInterestRate(decimal.RequireFromString("0.05"), CompoundingAnnual)
	factor, err := r.CompoundFactor(decimal.NewFromInt(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1.05^2 = 1.1025 exactly
	if !factor.Equal(decimal.RequireFromString("1.1025")) {
		t.Errorf("annual factor = %s, want 1.1025", factor)
	}
}

func TestDiscountFactor_InvertsCompounding(t *testing.T) {
	r, _ := NewInterestRate(decimal.RequireFromString("0.05"), CompoundingAnnual)
	years := decimal.NewFromInt(3)

	cf, err := r.CompoundFactor(years)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	df, err := r.DiscountFactor(years)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	product := cf.Mul(df)
	drift := product.Sub(decimal.NewFromInt(1)).Abs()
	if !drift.LessThan(decimal.RequireFromString("0.0000000001")) {
		t.Errorf("compound * discount = %s, want 1", product)
	}
}

// ---------------------------------------------------------------------------
// Spread
// ---------------------------------------------------------------------------

func TestSpread_Conversions(t *testing.T) {
	s := NewSpreadFromBps(250)

	if !s.Decimal().Equal(decimal.RequireFromString("0.025")) {
		t.Errorf("Decimal() = %s, want 0.025", s.Decimal())
	}
	if !s.Percent().Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Percent() = %s, want 2.5", s.Percent())
	}

	fromPct := NewSpreadFromPercent(decimal.RequireFromString("2.5"))
	if !fromPct.BasisPoints().Equal(s.BasisPoints()) {
		t.Errorf("NewSpreadFromPercent(2.5) = %sbps, want 250bps", fromPct.BasisPoints())
	}
}

func TestSpread_ApplyTo(t *testing.T) {
	base, _ := NewRateFromPercent(decimal.RequireFromString("4.0"), CompoundingMonthly)
	s := NewSpreadFromBps(150)

	adjusted, err := s.ApplyTo(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !adjusted.Rate().Equal(decimal.RequireFromString("0.055")) {
		t.Errorf("adjusted rate = %s, want 0.055", adjusted.Rate())
	}
	if !adjusted.Compounding().Equal(CompoundingMonthly) {
		t.Error("spread must keep the base compounding convention")
	}
}

func TestSpread_Arithmetic(t *testing.T) {
	a := NewSpreadFromBps(100)
	b := NewSpreadFromBps(50)

	if !a.Add(b).BasisPoints().Equal(decimal.NewFromInt(150)) {
		t.Error("Add failed")
	}
	if !a.Subtract(b).BasisPoints().Equal(decimal.NewFromInt(50)) {
		t.Error("Subtract failed")
	}
	if !a.Multiply(decimal.NewFromInt(2)).BasisPoints().Equal(decimal.NewFromInt(200)) {
		t.Error("Multiply failed")
	}
}

func TestSpread_Negate(t *testing.T) {
	s := NewSpreadFromBps(100)

	neg := s.Negate()
	if !neg.BasisPoints().Equal(decimal.NewFromInt(-100)) {
		t.Errorf("Negate() = %sbps, want -100bps", neg.BasisPoints())
	}
	if !neg.Negate().BasisPoints().Equal(s.BasisPoints()) {
		t.Error("double negation must restore the original spread")
	}
}

func TestInterestRate_ConvertTo(t *testing.T) {
	monthly, _ := NewRateFromPercent(decimal.RequireFromString("5.0"), CompoundingMonthly)

	annual, err := monthly.ConvertTo(CompoundingAnnual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !annual.Compounding().Equal(CompoundingAnnual) {
		t.Errorf("converted compounding = %s, want ANNUAL", annual.Compounding())
	}
	// Monthly compounding earns interest on interest, so the equivalent
	// annual rate sits above the nominal 5%.
	if !annual.Percent().GreaterThan(decimal.RequireFromString("5.0")) {
		t.Errorf("annual equivalent of 5%% monthly = %s%%, want > 5%%", annual.Percent())
	}

	mf, _ := monthly.CompoundFactor(decimal.NewFromInt(1))
	af, _ := annual.CompoundFactor(decimal.NewFromInt(1))
	tolerance := decimal.New(1, -10)
	if mf.Sub(af).Abs().GreaterThan(tolerance) {
		t.Errorf("one-year growth factors diverge: monthly %s vs annual %s", mf, af)
	}
}

func TestInterestRate_ConvertTo_Simple(t *testing.T) {
	quarterly, _ := NewRateFromPercent(decimal.RequireFromString("8.0"), CompoundingQuarterly)

	simple, err := quarterly.ConvertTo(CompoundingSimple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qf, _ := quarterly.CompoundFactor(decimal.NewFromInt(1))
	sf, _ := simple.CompoundFactor(decimal.NewFromInt(1))
	if !sf.Equal(qf) {
		t.Errorf("simple one-year factor %s, want %s", sf, qf)
	}
}

func TestInterestRate_ConvertTo_SameConvention(t *testing.T) {
	r, _ := NewRateFromPercent(decimal.RequireFromString("5.0"), CompoundingMonthly)

	same, err := r.ConvertTo(CompoundingMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !same.Equal(r) {
		t.Errorf("same-convention conversion changed the rate: %s", same)
	}
}
