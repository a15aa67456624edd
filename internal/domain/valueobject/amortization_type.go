package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// AmortizationType – immutable value object
// ---------------------------------------------------------------------------

// AmortizationType selects the repayment profile of a loan.
type AmortizationType struct {
	value string
}

const (
	amortizationLevelPayment   = "LEVEL_PAYMENT"
	amortizationLevelPrincipal = "LEVEL_PRINCIPAL"
	amortizationInterestOnly   = "INTEREST_ONLY"
	amortizationBullet         = "BULLET"
)

var (
	AmortizationLevelPayment   = AmortizationType{value: amortizationLevelPayment}
	AmortizationLevelPrincipal = AmortizationType{value: amortizationLevelPrincipal}
	AmortizationInterestOnly   = AmortizationType{value: amortizationInterestOnly}
	AmortizationBullet         = AmortizationType{value: amortizationBullet}
)

var validAmortizationTypes = map[string]AmortizationType{
	amortizationLevelPayment:   AmortizationLevelPayment,
	amortizationLevelPrincipal: AmortizationLevelPrincipal,
	amortizationInterestOnly:   AmortizationInterestOnly,
	amortizationBullet:         AmortizationBullet,
}

// NewAmortizationType creates an AmortizationType from a raw string.
func NewAmortizationType(s string) (AmortizationType, error) {
	v, ok := validAmortizationTypes[s]
	if !ok {
		return AmortizationType{}, fmt.Errorf("invalid amortization type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the type.
func (t AmortizationType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t AmortizationType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t AmortizationType) Equal(other AmortizationType) bool { return t.value == other.value }
