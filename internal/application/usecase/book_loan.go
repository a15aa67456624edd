package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/domain/event"
	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// BookLoanUseCase validates, persists and announces a new loan.
type BookLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewBookLoanUseCase wires dependencies.
func NewBookLoanUseCase(loanRepo port.LoanRepository, publisher port.EventPublisher) *BookLoanUseCase {
	return &BookLoanUseCase{loanRepo: loanRepo, publisher: publisher}
}

// Execute builds the loan aggregate from the request, persists it and
// publishes a LoanBooked event.
func (uc *BookLoanUseCase) Execute(
	ctx context.Context,
	req dto.BookLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := loanFromRequest(req)
	if err != nil {
		return dto.LoanResponse{}, err
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, event.NewLoanBooked(loan)); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}

func loanFromRequest(req dto.BookLoanRequest) (*model.Loan, error) {
	currency, err := money.NewCurrency(req.Currency)
	if err != nil {
		return nil, valueobject.NewValidationError("%s", err)
	}

	rate, err := money.NewRateFromPercent(req.RatePercent, money.CompoundingMonthly)
	if err != nil {
		return nil, valueobject.NewValidationError("rate must be non-negative")
	}

	term, err := temporal.ParsePeriod(req.Term)
	if err != nil {
		return nil, valueobject.NewValidationError("%s", err)
	}

	frequency, err := temporal.NewPaymentFrequency(req.Frequency)
	if err != nil {
		return nil, valueobject.NewValidationError("%s", err)
	}

	amortizationType, err := valueobject.NewAmortizationType(req.AmortizationType)
	if err != nil {
		return nil, valueobject.NewValidationError("%s", err)
	}

	var firstPaymentDate time.Time
	if req.FirstPaymentDate != nil {
		firstPaymentDate = *req.FirstPaymentDate
	}

	return model.NewLoan(
		money.New(req.Principal, currency), rate, term,
		frequency, amortizationType, req.OriginationDate, firstPaymentDate,
	)
}

func toLoanResponse(loan *model.Loan) dto.LoanResponse {
	resp := dto.LoanResponse{
		ID:               loan.ID().String(),
		Principal:        loan.Principal().Amount(),
		Currency:         loan.Principal().Currency().Code(),
		RatePercent:      loan.AnnualRate().Percent(),
		Term:             loan.Term().String(),
		Frequency:        loan.Frequency().String(),
		AmortizationType: loan.AmortizationType().String(),
		OriginationDate:  loan.OriginationDate(),
		FirstPaymentDate: loan.FirstPaymentDate(),
		MaturityDate:     loan.MaturityDate(),
		CreatedAt:        loan.CreatedAt(),
		UpdatedAt:        loan.UpdatedAt(),
	}

	if n, err := loan.NumberOfPayments(); err == nil {
		resp.NumberOfPayments = n
	}

	// The constant payment only exists for level-payment loans.
	if payment, err := loan.Payment(); err == nil {
		resp.Payment = payment.Amount()
	} else {
		resp.Payment = decimal.Zero
	}

	return resp
}
