package usecase

import (
	"context"
	"fmt"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// ListLoansUseCase pages through booked loans.
type ListLoansUseCase struct {
	loanRepo port.LoanRepository
}

// NewListLoansUseCase wires dependencies.
func NewListLoansUseCase(loanRepo port.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute returns a page of loans ordered newest first.
func (uc *ListLoansUseCase) Execute(
	ctx context.Context,
	req dto.ListLoansRequest,
) (dto.ListLoansResponse, error) {
	if req.Limit < 0 || req.Offset < 0 {
		return dto.ListLoansResponse{}, valueobject.NewValidationError("limit and offset must not be negative")
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	loans, err := uc.loanRepo.List(ctx, limit, req.Offset)
	if err != nil {
		return dto.ListLoansResponse{}, fmt.Errorf("list loans: %w", err)
	}

	resp := dto.ListLoansResponse{Loans: make([]dto.LoanResponse, 0, len(loans))}
	for _, loan := range loans {
		resp.Loans = append(resp.Loans, toLoanResponse(loan))
	}
	return resp, nil
}
