package event

import (
	"time"

	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/pkg/events"
)

const (
	LoanBookedType        = "loan.booked"
	ScheduleGeneratedType = "loan.schedule_generated"

	loanAggregateType = "loan"
)

// LoanBooked is published when a loan passes validation and is persisted.
type LoanBooked struct {
	events.BaseEvent
	Principal        string `json:"principal"`
	Currency         string `json:"currency"`
	RatePercent      string `json:"rate_percent"`
	Term             string `json:"term"`
	Frequency        string `json:"frequency"`
	AmortizationType string `json:"amortization_type"`
	OriginationDate  string `json:"origination_date"`
	MaturityDate     string `json:"maturity_date"`
}

// NewLoanBooked builds a LoanBooked event from the booked loan.
func NewLoanBooked(loan *model.Loan) LoanBooked {
	return LoanBooked{
		BaseEvent:        events.NewBaseEvent(LoanBookedType, loan.ID().String(), loanAggregateType),
		Principal:        loan.Principal().Amount().String(),
		Currency:         loan.Principal().Currency().Code(),
		RatePercent:      loan.AnnualRate().Percent().String(),
		Term:             loan.Term().String(),
		Frequency:        loan.Frequency().String(),
		AmortizationType: loan.AmortizationType().String(),
		OriginationDate:  loan.OriginationDate().Format(time.DateOnly),
		MaturityDate:     loan.MaturityDate().Format(time.DateOnly),
	}
}

// ScheduleGenerated is published after a cash flow schedule is produced for a
// booked loan.
type ScheduleGenerated struct {
	events.BaseEvent
	FlowCount     int    `json:"flow_count"`
	TotalInterest string `json:"total_interest"`
	TotalPayments string `json:"total_payments"`
	Currency      string `json:"currency"`
	FirstDate     string `json:"first_date,omitempty"`
	LastDate      string `json:"last_date,omitempty"`
}

// NewScheduleGenerated builds a ScheduleGenerated event from the loan and its
// generated schedule.
func NewScheduleGenerated(loan *model.Loan, schedule model.CashFlowSchedule) ScheduleGenerated {
	ev := ScheduleGenerated{
		BaseEvent:     events.NewBaseEvent(ScheduleGeneratedType, loan.ID().String(), loanAggregateType),
		FlowCount:     schedule.Len(),
		TotalInterest: schedule.InterestFlows().TotalAmount().Amount().String(),
		TotalPayments: schedule.TotalAmount().Amount().String(),
		Currency:      schedule.Currency().Code(),
	}
	if first, last, ok := schedule.DateRange(); ok {
		ev.FirstDate = first.Format(time.DateOnly)
		ev.LastDate = last.Format(time.DateOnly)
	}
	return ev
}
