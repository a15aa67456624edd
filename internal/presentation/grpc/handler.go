package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/application/usecase"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
)

// AmortizationHandler implements the gRPC amortization service handler.
type AmortizationHandler struct {
	UnimplementedAmortizationServiceServer

	bookLoan      *usecase.BookLoanUseCase
	getLoan       *usecase.GetLoanUseCase
	listLoans     *usecase.ListLoansUseCase
	genSchedule   *usecase.GenerateScheduleUseCase
	priceSchedule *usecase.PriceScheduleUseCase
}

// NewAmortizationHandler creates a new gRPC amortization handler.
func NewAmortizationHandler(
	bookLoan *usecase.BookLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	listLoans *usecase.ListLoansUseCase,
	genSchedule *usecase.GenerateScheduleUseCase,
	priceSchedule *usecase.PriceScheduleUseCase,
) *AmortizationHandler {
	return &AmortizationHandler{
		bookLoan:      bookLoan,
		getLoan:       getLoan,
		listLoans:     listLoans,
		genSchedule:   genSchedule,
		priceSchedule: priceSchedule,
	}
}

// BookLoanRequest represents the gRPC request for booking a loan. Amounts and
// rates are decimal strings; dates use YYYY-MM-DD.
type BookLoanRequest struct {
	Principal        string `json:"principal"`
	Currency         string `json:"currency"`
	RatePercent      string `json:"rate_percent"`
	Term             string `json:"term"`
	Frequency        string `json:"frequency"`
	AmortizationType string `json:"amortization_type"`
	OriginationDate  string `json:"origination_date"`
	FirstPaymentDate string `json:"first_payment_date,omitempty"`
}

// GetLoanRequest represents the gRPC request for retrieving a loan.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// ListLoansRequest represents the gRPC request for paging through loans.
type ListLoansRequest struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

// GenerateScheduleRequest represents the gRPC request for generating a
// loan's cash flow schedule.
type GenerateScheduleRequest struct {
	LoanID string `json:"loan_id"`
}

// PriceScheduleRequest represents the gRPC request for discounting a loan's
// schedule to present value.
type PriceScheduleRequest struct {
	LoanID              string `json:"loan_id"`
	DiscountRatePercent string `json:"discount_rate_percent"`
	ValuationDate       string `json:"valuation_date"`
	DayCount            string `json:"day_count,omitempty"`
}

// LoanResponse represents the gRPC response for a booked loan.
type LoanResponse struct {
	LoanID           string `json:"loan_id"`
	Principal        string `json:"principal"`
	Currency         string `json:"currency"`
	RatePercent      string `json:"rate_percent"`
	Term             string `json:"term"`
	Frequency        string `json:"frequency"`
	AmortizationType string `json:"amortization_type"`
	OriginationDate  string `json:"origination_date"`
	FirstPaymentDate string `json:"first_payment_date"`
	MaturityDate     string `json:"maturity_date"`
	NumberOfPayments int32  `json:"number_of_payments"`
	Payment          string `json:"payment,omitempty"`
}

// ListLoansResponse represents one page of booked loans.
type ListLoansResponse struct {
	Loans []*LoanResponse `json:"loans"`
}

// CashFlowMessage represents one dated flow of a schedule.
type CashFlowMessage struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Type   string `json:"type"`
	Memo   string `json:"memo,omitempty"`
}

// ScheduleResponse represents the gRPC response for a generated schedule.
type ScheduleResponse struct {
	LoanID        string             `json:"loan_id"`
	Currency      string             `json:"currency"`
	Flows         []*CashFlowMessage `json:"flows"`
	TotalInterest string             `json:"total_interest"`
	TotalPayments string             `json:"total_payments"`
}

// PriceResponse represents the gRPC response for a priced schedule.
type PriceResponse struct {
	LoanID              string `json:"loan_id"`
	Currency            string `json:"currency"`
	PresentValue        string `json:"present_value"`
	DiscountRatePercent string `json:"discount_rate_percent"`
	ValuationDate       string `json:"valuation_date"`
}

// BookLoan handles the gRPC BookLoan request.
func (h *AmortizationHandler) BookLoan(ctx context.Context, req *BookLoanRequest) (*LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid principal: %v", err))
	}
	ratePercent, err := decimal.NewFromString(req.RatePercent)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid rate_percent: %v", err))
	}
	originationDate, err := time.Parse(time.DateOnly, req.OriginationDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid origination_date: %v", err))
	}

	var firstPaymentDate *time.Time
	if req.FirstPaymentDate != "" {
		fp, err := time.Parse(time.DateOnly, req.FirstPaymentDate)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid first_payment_date: %v", err))
		}
		firstPaymentDate = &fp
	}

	result, err := h.bookLoan.Execute(ctx, dto.BookLoanRequest{
		Principal:        principal,
		Currency:         req.Currency,
		RatePercent:      ratePercent,
		Term:             req.Term,
		Frequency:        req.Frequency,
		AmortizationType: req.AmortizationType,
		OriginationDate:  originationDate,
		FirstPaymentDate: firstPaymentDate,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return toLoanResponse(result), nil
}

// GetLoan handles the gRPC GetLoan request.
func (h *AmortizationHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*LoanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, mapError(err)
	}
	return toLoanResponse(result), nil
}

// ListLoans handles the gRPC ListLoans request.
func (h *AmortizationHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*ListLoansResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.listLoans.Execute(ctx, dto.ListLoansRequest{
		Limit:  int(req.Limit),
		Offset: int(req.Offset),
	})
	if err != nil {
		return nil, mapError(err)
	}

	loans := make([]*LoanResponse, 0, len(result.Loans))
	for _, loan := range result.Loans {
		loans = append(loans, toLoanResponse(loan))
	}
	return &ListLoansResponse{Loans: loans}, nil
}

// GenerateSchedule handles the gRPC GenerateSchedule request.
func (h *AmortizationHandler) GenerateSchedule(ctx context.Context, req *GenerateScheduleRequest) (*ScheduleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.genSchedule.Execute(ctx, dto.GenerateScheduleRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, mapError(err)
	}

	flows := make([]*CashFlowMessage, 0, len(result.Flows))
	for _, cf := range result.Flows {
		flows = append(flows, &CashFlowMessage{
			Date:   cf.Date.Format(time.DateOnly),
			Amount: cf.Amount.String(),
			Type:   cf.Type,
			Memo:   cf.Memo,
		})
	}

	return &ScheduleResponse{
		LoanID:        result.LoanID,
		Currency:      result.Currency,
		Flows:         flows,
		TotalInterest: result.TotalInterest.String(),
		TotalPayments: result.TotalPayments.String(),
	}, nil
}

// PriceSchedule handles the gRPC PriceSchedule request.
func (h *AmortizationHandler) PriceSchedule(ctx context.Context, req *PriceScheduleRequest) (*PriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ratePercent, err := decimal.NewFromString(req.DiscountRatePercent)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid discount_rate_percent: %v", err))
	}
	valuationDate, err := time.Parse(time.DateOnly, req.ValuationDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid valuation_date: %v", err))
	}

	result, err := h.priceSchedule.Execute(ctx, dto.PriceScheduleRequest{
		LoanID:              req.LoanID,
		DiscountRatePercent: ratePercent,
		ValuationDate:       valuationDate,
		DayCount:            req.DayCount,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &PriceResponse{
		LoanID:              result.LoanID,
		Currency:            result.Currency,
		PresentValue:        result.PresentValue.String(),
		DiscountRatePercent: result.DiscountRatePercent.String(),
		ValuationDate:       result.ValuationDate.Format(time.DateOnly),
	}, nil
}

func toLoanResponse(r dto.LoanResponse) *LoanResponse {
	resp := &LoanResponse{
		LoanID:           r.ID,
		Principal:        r.Principal.String(),
		Currency:         r.Currency,
		RatePercent:      r.RatePercent.String(),
		Term:             r.Term,
		Frequency:        r.Frequency,
		AmortizationType: r.AmortizationType,
		OriginationDate:  r.OriginationDate.Format(time.DateOnly),
		FirstPaymentDate: r.FirstPaymentDate.Format(time.DateOnly),
		MaturityDate:     r.MaturityDate.Format(time.DateOnly),
		NumberOfPayments: int32(r.NumberOfPayments),
	}
	if !r.Payment.IsZero() {
		resp.Payment = r.Payment.String()
	}
	return resp
}

// mapError translates domain errors into gRPC status codes. Validation
// failures become InvalidArgument, missing loans become NotFound, everything
// else is Internal.
func mapError(err error) error {
	var verr valueobject.ValidationError
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Reason)
	case errors.Is(err, port.ErrLoanNotFound):
		return status.Error(codes.NotFound, "loan not found")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
