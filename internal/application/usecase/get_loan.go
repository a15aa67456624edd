package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
)

// GetLoanUseCase retrieves a booked loan by ID.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute returns a loan response for the given ID.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	id, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, valueobject.NewValidationError("invalid loan id %q", req.LoanID)
	}

	loan, err := uc.loanRepo.FindByID(ctx, id)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan), nil
}
