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
	"github.com/loanworks/amortization-service/internal/domain/model"
	"github.com/loanworks/amortization-service/internal/domain/port"
	"github.com/loanworks/amortization-service/internal/domain/valueobject"
	"github.com/loanworks/amortization-service/pkg/money"
	"github.com/loanworks/amortization-service/pkg/temporal"
)

func bulletLoan(t *testing.T) *model.Loan {
	t.Helper()
	rate, err := money.NewRateFromPercent(decimal.NewFromInt(5), money.CompoundingMonthly)
	require.NoError(t, err)
	term, err := temporal.ParsePeriod("5Y")
	require.NoError(t, err)
	loan, err := model.NewBulletLoan(
		money.New(decimal.NewFromInt(1_000_000), money.USD), rate, term,
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return loan
}

func TestPriceSchedule_Execute(t *testing.T) {
	t.Run("zero discount rate returns the undiscounted total", func(t *testing.T) {
		loan := bulletLoan(t)
		repo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		uc := usecase.NewPriceScheduleUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              loan.ID().String(),
			DiscountRatePercent: decimal.Zero,
			ValuationDate:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.Equal(t, loan.ID().String(), resp.LoanID)
		assert.Equal(t, "USD", resp.Currency)
		assert.True(t, resp.PresentValue.Equal(decimal.NewFromInt(1_000_000)),
			"present value = %s, want 1000000", resp.PresentValue)
	})

	t.Run("flows on the valuation date are not discounted", func(t *testing.T) {
		loan := bulletLoan(t)
		repo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		uc := usecase.NewPriceScheduleUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              loan.ID().String(),
			DiscountRatePercent: decimal.NewFromInt(5),
			ValuationDate:       loan.MaturityDate(),
		})
		require.NoError(t, err)
		assert.True(t, resp.PresentValue.Equal(decimal.NewFromInt(1_000_000)))
	})

	t.Run("future flows are discounted below face value", func(t *testing.T) {
		loan := bulletLoan(t)
		repo := &mockLoanRepository{
			findByIDFunc: func(_ context.Context, _ uuid.UUID) (*model.Loan, error) {
				return loan, nil
			},
		}
		uc := usecase.NewPriceScheduleUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              loan.ID().String(),
			DiscountRatePercent: decimal.NewFromInt(5),
			ValuationDate:       time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			DayCount:            "ACT/365F",
		})
		require.NoError(t, err)
		assert.True(t, resp.PresentValue.LessThan(decimal.NewFromInt(1_000_000)),
			"five years of discounting must reduce the value, got %s", resp.PresentValue)
		assert.True(t, resp.PresentValue.GreaterThan(decimal.NewFromInt(700_000)),
			"discounting at 5%% must not halve the value, got %s", resp.PresentValue)
	})

	t.Run("rejects a negative discount rate", func(t *testing.T) {
		uc := usecase.NewPriceScheduleUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              uuid.NewString(),
			DiscountRatePercent: decimal.NewFromInt(-1),
			ValuationDate:       time.Now(),
		})
		require.Error(t, err)
		var verr valueobject.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects an unknown day count", func(t *testing.T) {
		uc := usecase.NewPriceScheduleUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              uuid.NewString(),
			DiscountRatePercent: decimal.NewFromInt(5),
			ValuationDate:       time.Now(),
			DayCount:            "ACT/ACT",
		})
		require.Error(t, err)
		var verr valueobject.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		uc := usecase.NewPriceScheduleUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              "nope",
			DiscountRatePercent: decimal.NewFromInt(5),
			ValuationDate:       time.Now(),
		})
		require.Error(t, err)
		var verr valueobject.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("maps a missing loan", func(t *testing.T) {
		uc := usecase.NewPriceScheduleUseCase(&mockLoanRepository{})

		_, err := uc.Execute(context.Background(), dto.PriceScheduleRequest{
			LoanID:              uuid.NewString(),
			DiscountRatePercent: decimal.NewFromInt(5),
			ValuationDate:       time.Now(),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, port.ErrLoanNotFound)
	})
}
