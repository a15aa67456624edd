package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanworks/amortization-service/internal/application/dto"
	"github.com/loanworks/amortization-service/internal/application/usecase"
	"github.com/loanworks/amortization-service/internal/domain/event"
	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/events"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

func zeroRateLoan(t *testing.T) *model.Loan {
	t.Helper()
	rate, err := money.NewRateFromPercent(decimal.Zero, money.CompoundingMonthly)
	require.NoError(t, err)
	term, err := temporal.ParsePeriod("12M")
	require.NoError(t, err)
	loan, err := model.NewLoan(
		money.New(decimal.NewFromInt(12000), money.USD), rate, term,
		temporal.FrequencyMonthly, valueobject.AmortizationLevelPayment,
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), time.Time{},
	)
	require.NoError(t, err)
	return loan
}

func TestGenerateSchedule_Execute(t *testing.T) {
	t.Run("generates and announces the schedule", func(t *testing.T) {
		loan := zeroRateLoan(t)
		repo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewGenerateScheduleUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), dto.GenerateScheduleRequest{LoanID: loan.ID().String()})
		require.NoError(t, err)

		assert.Equal(t, loan.ID().String(), resp.LoanID)
		assert.Equal(t, "USD", resp.Currency)
		require.Len(t, resp.Flows, 24)
		assert.True(t, resp.TotalInterest.IsZero(), "total interest = %s, want 0", resp.TotalInterest)
		assert.True(t, resp.TotalPayments.Equal(decimal.NewFromInt(12000)),
			"total payments = %s, want 12000", resp.TotalPayments)

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, event.ScheduleGeneratedType, publisher.publishedEvents[0].EventType())
		assert.Equal(t, loan.ID().String(), publisher.publishedEvents[0].AggregateID())
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		uc := usecase.NewGenerateScheduleUseCase(&mockLoanRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.GenerateScheduleRequest{LoanID: "nope"})
		require.Error(t, err)
		var verr valueobject.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("maps a missing loan", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := usecase.NewGenerateScheduleUseCase(&mockLoanRepository{}, publisher)

		_, err := uc.Execute(context.Background(), dto.GenerateScheduleRequest{LoanID: uuid.NewString()})
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrLoanNotFound)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("propagates publisher failure", func(t *testing.T) {
		loan := zeroRateLoan(t)
		repo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{
			publishFunc: func(_ context.Context, _ ...events.DomainEvent) error {
				return assert.AnError
			},
		}
		uc := usecase.NewGenerateScheduleUseCase(repo, publisher)

		_, err := uc.Execute(context.Background(), dto.GenerateScheduleRequest{LoanID: loan.ID().String()})
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
