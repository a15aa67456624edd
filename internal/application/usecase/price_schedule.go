package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

// PriceScheduleUseCase discounts a loan's cash flow schedule to present value
// at a flat rate.
type PriceScheduleUseCase struct {
	loanRepo port.LoanRepository
}

// NewPriceScheduleUseCase wires dependencies.
func NewPriceScheduleUseCase(loanRepo port.LoanRepository) *PriceScheduleUseCase {
	return &PriceScheduleUseCase{loanRepo: loanRepo}
}

// Execute loads the loan, generates its schedule and discounts every flow
// back to the valuation date.
func (uc *PriceScheduleUseCase) Execute(
	ctx context.Context,
	req dto.PriceScheduleRequest,
) (dto.PriceResponse, error) {
	id, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.PriceResponse{}, valueobject.NewValidationError("invalid loan id %q", req.LoanID)
	}

	rate, err := money.NewRateFromPercent(req.DiscountRatePercent, money.CompoundingAnnual)
	if err != nil {
		return dto.PriceResponse{}, valueobject.NewValidationError("discount rate must be non-negative")
	}

	curve := model.NewFlatDiscountCurve(rate, req.ValuationDate)
	if req.DayCount != "" {
		dc, err := temporal.NewDayCount(req.DayCount)
		if err != nil {
			return dto.PriceResponse{}, valueobject.NewValidationError("%s", err)
		}
		curve = model.NewFlatDiscountCurveWithDayCount(rate, req.ValuationDate, dc)
	}

	loan, err := uc.loanRepo.FindByID(ctx, id)
	if err != nil {
		return dto.PriceResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule, err := loan.GenerateSchedule()
	if err != nil {
		return dto.PriceResponse{}, err
	}

	pv, err := schedule.PresentValue(curve)
	if err != nil {
		return dto.PriceResponse{}, fmt.Errorf("discount schedule: %w", err)
	}

	return dto.PriceResponse{
		LoanID:              loan.ID().String(),
		Currency:            schedule.Currency().Code(),
		PresentValue:        pv.Amount(),
		DiscountRatePercent: req.DiscountRatePercent,
		ValuationDate:       req.ValuationDate,
	}, nil
}
