package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CashFlowType – immutable value object
// ---------------------------------------------------------------------------

// CashFlowType tags a cash flow with its economic role. BALLOON and
// PREPAYMENT both represent principal repayment.
type CashFlowType struct {
	value string
}

const (
	cashFlowInterest   = "INTEREST"
	cashFlowPrincipal  = "PRINCIPAL"
	cashFlowBalloon    = "BALLOON"
	cashFlowPrepayment = "PREPAYMENT"
)

var (
	CashFlowInterest   = CashFlowType{value: cashFlowInterest}
	CashFlowPrincipal  = CashFlowType{value: cashFlowPrincipal}
	CashFlowBalloon    = CashFlowType{value: cashFlowBalloon}
	CashFlowPrepayment = CashFlowType{value: cashFlowPrepayment}
)

var validCashFlowTypes = map[string]CashFlowType{
	cashFlowInterest:   CashFlowInterest,
	cashFlowPrincipal:  CashFlowPrincipal,
	cashFlowBalloon:    CashFlowBalloon,
	cashFlowPrepayment: CashFlowPrepayment,
}

// NewCashFlowType creates a CashFlowType from a raw string.
func NewCashFlowType(s string) (CashFlowType, error) {
	v, ok := validCashFlowTypes[s]
	if !ok {
		return CashFlowType{}, fmt.Errorf("invalid cash flow type: %q", s)
	}
	return v, nil
}

// IsPrincipalRepayment returns true for flow types that repay principal:
// PRINCIPAL, BALLOON and PREPAYMENT.
func (t CashFlowType) IsPrincipalRepayment() bool {
	return t.value == cashFlowPrincipal || t.value == cashFlowBalloon || t.value == cashFlowPrepayment
}

// String returns the string representation of the type.
func (t CashFlowType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t CashFlowType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t CashFlowType) Equal(other CashFlowType) bool { return t.value == other.value }
