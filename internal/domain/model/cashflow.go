package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// ---------------------------------------------------------------------------
// CashFlow – immutable value object
// ---------------------------------------------------------------------------

// CashFlow is a single dated payment: an amount, its economic role and an
// optional memo.
type CashFlow struct {
	date   time.Time
	amount money.Money
	kind   valueobject.CashFlowType
	memo   string
}

// NewCashFlow creates a CashFlow.
func NewCashFlow(date time.Time, amount money.Money, kind valueobject.CashFlowType) (CashFlow, error) {
	if kind.IsZero() {
		return CashFlow{}, fmt.Errorf("cash flow type is required")
	}
	return CashFlow{date: date, amount: amount, kind: kind}, nil
}

// NewCashFlowWithMemo creates a CashFlow carrying a free-form memo.
func NewCashFlowWithMemo(date time.Time, amount money.Money, kind valueobject.CashFlowType, memo string) (CashFlow, error) {
	cf, err := NewCashFlow(date, amount, kind)
	if err != nil {
		return CashFlow{}, err
	}
	cf.memo = memo
	return cf, nil
}

// Date returns the payment date.
func (cf CashFlow) Date() time.Time { return cf.date }

// Amount returns the payment amount.
func (cf CashFlow) Amount() money.Money { return cf.amount }

// Type returns the cash flow type.
func (cf CashFlow) Type() valueobject.CashFlowType { return cf.kind }

// Memo returns the optional memo.
func (cf CashFlow) Memo() string { return cf.memo }

// IsPositive returns true if the amount is strictly positive.
func (cf CashFlow) IsPositive() bool { return cf.amount.IsPositive() }

// IsNegative returns true if the amount is strictly negative.
func (cf CashFlow) IsNegative() bool { return cf.amount.IsNegative() }

// IsZero returns true if the amount is zero.
func (cf CashFlow) IsZero() bool { return cf.amount.IsZero() }

// Before returns true if this flow is dated strictly before the other.
func (cf CashFlow) Before(other CashFlow) bool { return cf.date.Before(other.date) }

// String formats the flow as "<date> <type> <amount>".
func (cf CashFlow) String() string {
	s := fmt.Sprintf("%s %s %s", cf.date.Format("2006-01-02"), cf.kind, cf.amount)
	if cf.memo != "" {
		s += " (" + cf.memo + ")"
	}
	return s
}

// ---------------------------------------------------------------------------
// CashFlowSchedule – immutable ordered sequence of cash flows
// ---------------------------------------------------------------------------

// CashFlowSchedule is an ordered collection of cash flows in a single
// currency. The order is the generation order (chronological for generated
// schedules). All query methods are pure projections; a schedule is never
// mutated after construction.
type CashFlowSchedule struct {
	flows    []CashFlow
	currency money.Currency
}

// NewCashFlowSchedule builds a schedule from the given flows, preserving
// their order. All flows must share one currency.
func NewCashFlowSchedule(currency money.Currency, flows []CashFlow) (CashFlowSchedule, error) {
	for _, cf := range flows {
		if cf.amount.Currency() != currency {
			return CashFlowSchedule{}, fmt.Errorf(
				"currency mismatch in schedule: flow on %s is %s, want %s",
				cf.date.Format("2006-01-02"), cf.amount.Currency(), currency,
			)
		}
	}
	copied := make([]CashFlow, len(flows))
	copy(copied, flows)
	return CashFlowSchedule{flows: copied, currency: currency}, nil
}

// EmptySchedule returns a schedule with no flows in the given currency.
func EmptySchedule(currency money.Currency) CashFlowSchedule {
	return CashFlowSchedule{currency: currency}
}

// Len returns the number of flows.
func (s CashFlowSchedule) Len() int { return len(s.flows) }

// IsEmpty returns true when the schedule has no flows.
func (s CashFlowSchedule) IsEmpty() bool { return len(s.flows) == 0 }

// At returns the flow at position i in generation order.
func (s CashFlowSchedule) At(i int) CashFlow { return s.flows[i] }

// Currency returns the schedule currency.
func (s CashFlowSchedule) Currency() money.Currency { return s.currency }

// Flows returns a defensive copy of the flow sequence.
func (s CashFlowSchedule) Flows() []CashFlow {
	out := make([]CashFlow, len(s.flows))
	copy(out, s.flows)
	return out
}

// FilterByType returns the flows carrying the given type, in order.
func (s CashFlowSchedule) FilterByType(kind valueobject.CashFlowType) CashFlowSchedule {
	var out []CashFlow
	for _, cf := range s.flows {
		if cf.kind.Equal(kind) {
			out = append(out, cf)
		}
	}
	return CashFlowSchedule{flows: out, currency: s.currency}
}

// FilterByDateRange returns the flows dated strictly inside (from, to).
func (s CashFlowSchedule) FilterByDateRange(from, to time.Time) CashFlowSchedule {
	var out []CashFlow
	for _, cf := range s.flows {
		if cf.date.After(from) && cf.date.Before(to) {
			out = append(out, cf)
		}
	}
	return CashFlowSchedule{flows: out, currency: s.currency}
}

// InterestFlows returns only the INTEREST flows.
func (s CashFlowSchedule) InterestFlows() CashFlowSchedule {
	return s.FilterByType(valueobject.CashFlowInterest)
}

// PrincipalFlows returns the flows repaying principal: PRINCIPAL, BALLOON
// and PREPAYMENT.
func (s CashFlowSchedule) PrincipalFlows() CashFlowSchedule {
	var out []CashFlow
	for _, cf := range s.flows {
		if cf.kind.IsPrincipalRepayment() {
			out = append(out, cf)
		}
	}
	return CashFlowSchedule{flows: out, currency: s.currency}
}

// TotalAmount sums the amounts of all flows in the schedule.
func (s CashFlowSchedule) TotalAmount() money.Money {
	total := money.Zero(s.currency)
	for _, cf := range s.flows {
		// Currencies are uniform by construction; Add cannot fail here.
		total, _ = total.Add(cf.amount)
	}
	return total
}

// SumByType sums flow amounts grouped by cash flow type.
func (s CashFlowSchedule) SumByType() map[valueobject.CashFlowType]money.Money {
	sums := make(map[valueobject.CashFlowType]money.Money)
	for _, cf := range s.flows {
		cur, ok := sums[cf.kind]
		if !ok {
			cur = money.Zero(s.currency)
		}
		cur, _ = cur.Add(cf.amount)
		sums[cf.kind] = cur
	}
	return sums
}

// EarliestDate returns the earliest flow date, or false for an empty schedule.
func (s CashFlowSchedule) EarliestDate() (time.Time, bool) {
	if len(s.flows) == 0 {
		return time.Time{}, false
	}
	earliest := s.flows[0].date
	for _, cf := range s.flows[1:] {
		if cf.date.Before(earliest) {
			earliest = cf.date
		}
	}
	return earliest, true
}

// LatestDate returns the latest flow date, or false for an empty schedule.
func (s CashFlowSchedule) LatestDate() (time.Time, bool) {
	if len(s.flows) == 0 {
		return time.Time{}, false
	}
	latest := s.flows[0].date
	for _, cf := range s.flows[1:] {
		if cf.date.After(latest) {
			latest = cf.date
		}
	}
	return latest, true
}

// DateRange returns the earliest and latest flow dates, or false for an
// empty schedule.
func (s CashFlowSchedule) DateRange() (time.Time, time.Time, bool) {
	earliest, ok := s.EarliestDate()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	latest, _ := s.LatestDate()
	return earliest, latest, true
}

// AggregateByPeriod buckets the flows into calendar periods of the given
// payment frequency and sums the amounts per period and type. MONTHLY groups
// by calendar month, QUARTERLY by calendar quarter, and so on. Each
// aggregated flow is dated on the latest flow it absorbed; buckets come out
// in chronological order.
func (s CashFlowSchedule) AggregateByPeriod(freq temporal.PaymentFrequency) (CashFlowSchedule, error) {
	if !freq.IsPeriodic() {
		return CashFlowSchedule{}, fmt.Errorf("cannot aggregate by %s frequency", freq)
	}
	step := freq.MonthStep()

	type groupKey struct {
		bucket int
		kind   valueobject.CashFlowType
	}
	index := make(map[groupKey]int)
	var out []CashFlow
	for _, cf := range s.Sorted().flows {
		y, m, _ := cf.date.Date()
		key := groupKey{bucket: (y*12 + int(m) - 1) / step, kind: cf.kind}
		if i, ok := index[key]; ok {
			// Currencies are uniform by construction; Add cannot fail here.
			sum, _ := out[i].amount.Add(cf.amount)
			out[i].amount = sum
			out[i].date = cf.date
			continue
		}
		index[key] = len(out)
		// Memos do not survive aggregation.
		out = append(out, CashFlow{date: cf.date, amount: cf.amount, kind: cf.kind})
	}
	return CashFlowSchedule{flows: out, currency: s.currency}, nil
}

// Sorted returns a copy of the schedule ordered by date. The sort is stable,
// so same-day flows keep their generation order.
func (s CashFlowSchedule) Sorted() CashFlowSchedule {
	out := s.Flows()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].date.Before(out[j].date)
	})
	return CashFlowSchedule{flows: out, currency: s.currency}
}

// String summarises the schedule as "<n> flows [<first> .. <last>]".
func (s CashFlowSchedule) String() string {
	earliest, latest, ok := s.DateRange()
	if !ok {
		return "0 flows"
	}
	return fmt.Sprintf("%d flows [%s .. %s]",
		len(s.flows), earliest.Format("2006-01-02"), latest.Format("2006-01-02"))
}
