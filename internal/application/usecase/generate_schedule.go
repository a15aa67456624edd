package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/domain/event"
	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
)

// GenerateScheduleUseCase produces the full cash flow schedule for a booked
// loan.
type GenerateScheduleUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(loanRepo port.LoanRepository, publisher port.EventPublisher) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{loanRepo: loanRepo, publisher: publisher}
}

// Execute loads the loan, generates its schedule and publishes a
// ScheduleGenerated event.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GenerateScheduleRequest,
) (dto.ScheduleResponse, error) {
	id, err := uuid.Parse(req.LoanID)
	if err != nil {
		return dto.ScheduleResponse{}, valueobject.NewValidationError("invalid loan id %q", req.LoanID)
	}

	loan, err := uc.loanRepo.FindByID(ctx, id)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule, err := loan.GenerateSchedule()
	if err != nil {
		return dto.ScheduleResponse{}, err
	}

	if err := uc.publisher.Publish(ctx, event.NewScheduleGenerated(loan, schedule)); err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toScheduleResponse(loan, schedule), nil
}

func toScheduleResponse(loan *model.Loan, schedule model.CashFlowSchedule) dto.ScheduleResponse {
	flows := make([]dto.CashFlowResponse, 0, schedule.Len())
	for _, cf := range schedule.Flows() {
		flows = append(flows, dto.CashFlowResponse{
			Date:   cf.Date(),
			Amount: cf.Amount().Amount(),
			Type:   cf.Type().String(),
			Memo:   cf.Memo(),
		})
	}
	return dto.ScheduleResponse{
		LoanID:        loan.ID().String(),
		Currency:      schedule.Currency().Code(),
		Flows:         flows,
		TotalInterest: schedule.InterestFlows().TotalAmount().Amount(),
		TotalPayments: schedule.TotalAmount().Amount(),
	}
}
