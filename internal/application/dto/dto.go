package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// BookLoanRequest carries the data needed to validate and book a new loan.
// Term uses compact notation such as "30Y" or "72M"; the rate is a percentage
// literal (6.5 means 6.5% per year).
type BookLoanRequest struct {
	Principal        decimal.Decimal `json:"principal"`
	Currency         string          `json:"currency"`
	RatePercent      decimal.Decimal `json:"rate_percent"`
	Term             string          `json:"term"`
	Frequency        string          `json:"frequency"`
	AmortizationType string          `json:"amortization_type"`
	OriginationDate  time.Time       `json:"origination_date"`
	FirstPaymentDate *time.Time      `json:"first_payment_date,omitempty"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListLoansRequest pages through booked loans, newest first. A zero limit
// falls back to the server default.
type ListLoansRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// GenerateScheduleRequest identifies a loan whose schedule to generate.
type GenerateScheduleRequest struct {
	LoanID string `json:"loan_id"`
}

// PriceScheduleRequest asks for the present value of a loan's schedule,
// discounted at a flat rate from the valuation date.
type PriceScheduleRequest struct {
	LoanID              string          `json:"loan_id"`
	DiscountRatePercent decimal.Decimal `json:"discount_rate_percent"`
	ValuationDate       time.Time       `json:"valuation_date"`
	DayCount            string          `json:"day_count,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// LoanResponse is the external representation of a booked loan.
type LoanResponse struct {
	ID               string          `json:"id"`
	Principal        decimal.Decimal `json:"principal"`
	Currency         string          `json:"currency"`
	RatePercent      decimal.Decimal `json:"rate_percent"`
	Term             string          `json:"term"`
	Frequency        string          `json:"frequency"`
	AmortizationType string          `json:"amortization_type"`
	OriginationDate  time.Time       `json:"origination_date"`
	FirstPaymentDate time.Time       `json:"first_payment_date"`
	MaturityDate     time.Time       `json:"maturity_date"`
	NumberOfPayments int             `json:"number_of_payments"`
	Payment          decimal.Decimal `json:"payment,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ListLoansResponse is a page of booked loans.
type ListLoansResponse struct {
	Loans []LoanResponse `json:"loans"`
}

// CashFlowResponse is a single dated flow of a schedule.
type CashFlowResponse struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Memo   string          `json:"memo,omitempty"`
}

// ScheduleResponse is the external representation of a generated schedule.
type ScheduleResponse struct {
	LoanID        string             `json:"loan_id"`
	Currency      string             `json:"currency"`
	Flows         []CashFlowResponse `json:"flows"`
	TotalInterest decimal.Decimal    `json:"total_interest"`
	TotalPayments decimal.Decimal    `json:"total_payments"`
}

// PriceResponse is the present value of a loan's schedule.
type PriceResponse struct {
	LoanID              string          `json:"loan_id"`
	Currency            string          `json:"currency"`
	PresentValue        decimal.Decimal `json:"present_value"`
	DiscountRatePercent decimal.Decimal `json:"discount_rate_percent"`
	ValuationDate       time.Time       `json:"valuation_date"`
}
